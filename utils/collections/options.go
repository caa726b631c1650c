package collections

import (
	log "github.com/sirupsen/logrus"
)

type config struct {
	hashFunc HashFunc
	log      *log.Entry
}

type Option func(*config)

func WithHashFunc(f HashFunc) Option {
	return func(c *config) {
		if f != nil {
			c.hashFunc = f
		}
	}
}

func WithLogger(logger *log.Entry) Option {
	return func(c *config) {
		if logger != nil {
			c.log = logger
		}
	}
}

func newConfig(kind string, hashFunc HashFunc, opts ...Option) *config {
	c := &config{
		hashFunc: hashFunc,
		log:      log.WithFields(log.Fields{"map": kind}),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.hashFunc == nil {
		c.hashFunc = XXHash
	}
	return c
}
