package main

import (
	"github.com/mgnsk/ilist"
	"github.com/mgnsk/ilist/arena"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type object struct {
	i    int
	list ilist.Link
}

func runDemo(log logrus.FieldLogger) error {
	objects := arena.New[object]()
	l := ilist.New(objects, func(o *object) *ilist.Link { return &o.list }, ilist.WithName("demo"))
	defer l.Close()

	handles := make([]arena.Handle, 10)
	for i := range handles {
		h, o := objects.Alloc()
		o.i = i
		handles[i] = h
		log.WithFields(logrus.Fields{"i": i, "handle": h}).Debug("allocated object")
	}

	for _, h := range handles {
		if _, err := l.Add(h); err != nil {
			return errors.Wrapf(err, "adding %v", h)
		}
	}

	if err := dump(log, l); err != nil {
		return err
	}

	first := l.First()
	log.WithFields(logrus.Fields{"handle": first, "val": objects.Get(first).i}).Info("first")

	walk := func(step string) {
		l.EachStep(func(h arena.Handle, o *object) bool {
			log.WithFields(logrus.Fields{"handle": h, "val": o.i}).Info(step)
			return true
		})
		log.WithField("num", l.Count()).Info(step + " done")
	}

	walk("for each")

	for _, tc := range []struct {
		step string
		i    int
	}{
		{"delete middle entry", 4},
		{"delete last entry", 9},
		{"delete first entry", 0},
	} {
		if _, err := l.Remove(handles[tc.i]); err != nil {
			return errors.Wrapf(err, "%s %d", tc.step, tc.i)
		}
		walk(tc.step)
	}

	log.WithField("num", l.Count()).Info("before pop")
	for h := l.Pop(); h != arena.None; h = l.Pop() {
		log.WithFields(logrus.Fields{"handle": h, "val": objects.Get(h).i}).Info("pop")
	}
	log.WithField("num", l.Count()).Info("after pop")

	for _, h := range handles {
		if _, err := l.Add(h); err != nil {
			return errors.Wrapf(err, "re-adding %v", h)
		}
	}

	log.WithField("num", l.Count()).Info("before drain")
	l.Drain(func(h arena.Handle, o *object) bool {
		log.WithFields(logrus.Fields{"handle": h, "val": o.i}).Info("drain")
		return true
	})
	log.WithField("num", l.Count()).Info("after drain")

	return l.Validate()
}

func dump(log logrus.FieldLogger, l *ilist.List[object]) error {
	w := log.WithField("list", l.Name()).WriterLevel(logrus.DebugLevel)
	defer w.Close()

	return errors.Wrap(l.Dump(w), "dumping list")
}
