package main

import (
	"context"
	"encoding/binary"
	"hash/maphash"
	"time"

	"github.com/mgnsk/ilist"
	"github.com/mgnsk/ilist/arena"
	"github.com/pkg/errors"
	"github.com/puzpuzpuz/xsync/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type stressStats struct {
	adds     *xsync.Counter
	removes  *xsync.Counter
	steps    *xsync.Counter
	rejected *xsync.Counter
}

func newStressStats() stressStats {
	return stressStats{
		adds:     xsync.NewCounter(),
		removes:  xsync.NewCounter(),
		steps:    xsync.NewCounter(),
		rejected: xsync.NewCounter(),
	}
}

func hashHandle(seed maphash.Seed, h arena.Handle) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(h))

	var mh maphash.Hash
	mh.SetSeed(seed)
	mh.Write(b[:])

	return mh.Sum64()
}

// runStress moves every worker's records back and forth between two lists
// sharing one link field while the other workers do the same.
func runStress(ctx context.Context, log logrus.FieldLogger, cfg Config) error {
	log.WithFields(logrus.Fields{
		"workers":    cfg.Workers,
		"records":    cfg.Records,
		"rounds":     cfg.Rounds,
		"chunk_size": cfg.ChunkSize,
	}).Info("starting stress")

	objects := arena.New[object](arena.WithChunkSize(cfg.ChunkSize))
	linkOf := func(o *object) *ilist.Link { return &o.list }
	left := ilist.New(objects, linkOf, ilist.WithName("left"))
	right := ilist.New(objects, linkOf, ilist.WithName("right"))

	// placement records which list each handle was last added to.
	placement := xsync.NewTypedMapOf[arena.Handle, *ilist.List[object]](hashHandle)
	stats := newStressStats()

	start := time.Now()
	eg, ctx := errgroup.WithContext(ctx)

	for w := 0; w < cfg.Workers; w++ {
		handles := make([]arena.Handle, cfg.Records)
		for i := range handles {
			h, o := objects.Alloc()
			o.i = w*cfg.Records + i
			handles[i] = h
		}

		eg.Go(func() error {
			return stressWorker(ctx, cfg.Rounds, handles, left, right, placement, stats)
		})
	}

	if err := eg.Wait(); err != nil {
		return errors.Wrap(err, "stress worker")
	}

	log.WithFields(logrus.Fields{
		"elapsed":  time.Since(start),
		"adds":     stats.adds.Value(),
		"removes":  stats.removes.Value(),
		"steps":    stats.steps.Value(),
		"rejected": stats.rejected.Value(),
		"left":     left.Count(),
		"right":    right.Count(),
	}).Info("workers done")

	return verifyStress(log, objects, placement, left, right)
}

func stressWorker(
	ctx context.Context,
	rounds int,
	handles []arena.Handle,
	left, right *ilist.List[object],
	placement *xsync.MapOf[arena.Handle, *ilist.List[object]],
	stats stressStats,
) error {
	for _, h := range handles {
		if _, err := left.Add(h); err != nil {
			return errors.Wrapf(err, "adding %v", h)
		}
		placement.Store(h, left)
		stats.adds.Inc()
	}

	from, to := left, right

	for r := 0; r < rounds; r++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		for _, h := range handles {
			if _, err := to.Add(h); !errors.Is(err, ilist.ErrAttached) {
				return errors.Errorf("list %s accepted %v attached to %s: %v", to.Name(), h, from.Name(), err)
			}
			stats.rejected.Inc()

			if _, err := from.Remove(h); err != nil {
				return errors.Wrapf(err, "removing %v from %s", h, from.Name())
			}
			stats.removes.Inc()

			if _, err := to.Add(h); err != nil {
				return errors.Wrapf(err, "adding %v to %s", h, to.Name())
			}
			placement.Store(h, to)
			stats.adds.Inc()
		}

		to.EachStep(func(arena.Handle, *object) bool {
			stats.steps.Inc()
			return true
		})

		from, to = to, from
	}

	return nil
}

func verifyStress(
	log logrus.FieldLogger,
	objects *arena.Arena[object],
	placement *xsync.MapOf[arena.Handle, *ilist.List[object]],
	left, right *ilist.List[object],
) error {
	for _, l := range []*ilist.List[object]{left, right} {
		if err := l.Validate(); err != nil {
			return err
		}
	}

	if total, want := left.Count()+right.Count(), objects.Len(); total != want {
		return errors.Errorf("lists hold %d records, arena has %d", total, want)
	}

	var err error
	placement.Range(func(h arena.Handle, l *ilist.List[object]) bool {
		if !l.Owns(h) {
			err = errors.Errorf("record %v is not in list %s", h, l.Name())
			return false
		}
		return true
	})
	if err != nil {
		return err
	}

	drained := 0
	for _, l := range []*ilist.List[object]{left, right} {
		l.Drain(func(h arena.Handle, _ *object) bool {
			objects.Free(h)
			drained++
			return true
		})
		l.Close()
	}

	log.WithFields(logrus.Fields{
		"drained": drained,
		"live":    objects.Len(),
	}).Info("stress verified")

	if objects.Len() != 0 {
		return errors.Errorf("%d records left after drain", objects.Len())
	}

	return nil
}
