package main

import (
	"fmt"
	"strconv"

	"github.com/tuannh982/hashmap/utils/collections"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	log.SetLevel(log.DebugLevel)

	oa := collections.NewOpenAddressingMap[int](50, collections.StringSum)
	for i := 0; i < 150; i++ {
		oa.Put("str"+strconv.Itoa(i), i*100)
		if i%25 == 24 {
			fmt.Println(oa.EmptyBuckets(), oa.TableLoad(), oa.Size(), oa.Capacity())
		}
	}

	sc := collections.NewChainedMap[int](40, collections.StringWeighted)
	for i := 0; i < 50; i++ {
		sc.Put("str"+strconv.Itoa(i/3), i*100)
		if i%10 == 9 {
			fmt.Println(sc.EmptyBuckets(), sc.TableLoad(), sc.Size(), sc.Capacity())
		}
	}

	values := []string{"apple", "apple", "grape", "melon", "melon", "peach"}
	modes, frequency := collections.FindMode(values)
	fmt.Printf("Input: %v\nMode: %v, Frequency: %d\n", values, modes.Entries(), frequency)
}
