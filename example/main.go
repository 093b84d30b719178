package main

import (
	"fmt"
	"os"

	"github.com/mgnsk/ilist"
	"github.com/mgnsk/ilist/arena"
)

// task belongs to two lists at once: every task is in the registry,
// pending tasks are also in the run queue.
type task struct {
	name     string
	registry ilist.Link
	queue    ilist.Link
}

func main() {
	tasks := arena.New[task]()

	registry := ilist.New(tasks, func(t *task) *ilist.Link { return &t.registry }, ilist.WithName("registry"))
	queue := ilist.New(tasks, func(t *task) *ilist.Link { return &t.queue }, ilist.WithName("queue"))

	for _, name := range []string{"fetch", "build", "test", "deploy"} {
		h, t := tasks.Alloc()
		t.name = name

		if _, err := registry.Add(h); err != nil {
			panic(err)
		}

		if _, err := queue.Add(h); err != nil {
			panic(err)
		}
	}

	// Run two tasks. They stay in the registry.
	for i := 0; i < 2; i++ {
		if h := queue.Pop(); h != arena.None {
			fmt.Println("ran", tasks.Get(h).name)
		}
	}

	fmt.Println(registry, queue)

	if err := queue.Dump(os.Stdout); err != nil {
		panic(err)
	}
}
