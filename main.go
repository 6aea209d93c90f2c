package main

import (
	"fmt"
	"os"

	"go-lists/config"
	"go-lists/pkg/customerrors"
	"go-lists/pkg/linkedlist"
	"go-lists/pkg/list"
	"go-lists/pkg/slablist"
	"go-lists/util/logger"

	"github.com/sirupsen/logrus"
)

func main() {
	configs := config.New()
	if err := configs.ListConfig.Validate(); err != nil {
		fatal(err)
	}

	log := logger.Component("slablist")
	slab, err := slablist.New[int](configs.ListConfig.Capacity, configs.ListConfig.Options(log))
	if err != nil {
		fatal(err)
	}

	lists := []struct {
		name string
		l    list.List[int]
	}{
		{"slablist", slab},
		{"linkedlist", linkedlist.New[int]()},
	}

	for _, item := range lists {
		run(item.name, item.l)
	}

	if err := slab.Check(); err != nil {
		fatal(err)
	}
	logger.L.Infof("slab list consistent, %d of %d slots free", slab.Available(), slab.Cap())
}

func run(name string, l list.List[int]) {
	log := logger.Component(name)

	for _, v := range []int{10, 20, 30} {
		report(log, fmt.Sprintf("insert(%d)", v), l.Insert(v), customerrors.ErrCapacityExhausted)
	}
	log.Infof("contents %v", l.Values())

	report(log, "insert_at(1, 15)", l.InsertAt(1, 15), customerrors.ErrOutOfRange)
	report(log, "insert_at(9, 0)", l.InsertAt(9, 0), customerrors.ErrOutOfRange)
	for pos := 0; pos < 3; pos++ {
		v, ok := l.Get(pos)
		report(log.WithField("value", v), fmt.Sprintf("get(%d)", pos), ok, customerrors.ErrOutOfRange)
	}

	report(log, "delete_element(20)", l.DeleteElement(20), customerrors.ErrNotFound)
	v, ok := l.Get(2)
	report(log.WithField("value", v), "get(2)", ok, customerrors.ErrOutOfRange)
	report(log, "find(999)", l.Find(999), customerrors.ErrNotFound)

	for i := 0; l.Cap() >= 0 && l.Len() < l.Cap(); i++ {
		l.Insert(40 + i*10)
	}
	for i := 0; i < 5; i++ {
		report(log, fmt.Sprintf("insert(%d)", 100+i), l.Insert(100+i), customerrors.ErrCapacityExhausted)
	}
	log.Infof("contents %v, len %d", l.Values(), l.Len())
}

func report(log logrus.FieldLogger, op string, ok bool, cause error) {
	if ok {
		log.Infof("%s -> ok", op)
		return
	}
	log.WithError(cause).Warnf("%s -> rejected", op)
}

func fatal(val interface{}) {
	fmt.Println(val)
	os.Exit(1)
}
