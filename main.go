package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	_ "go.uber.org/automaxprocs"

	"github.com/morningli/linked_lists/pkg/functional"
	"github.com/morningli/linked_lists/pkg/queue"
	"github.com/morningli/linked_lists/pkg/seq"
	"github.com/morningli/linked_lists/pkg/stack"
	"github.com/morningli/linked_lists/pkg/stats"
)

var (
	structure = flag.String("s", "stack", "structure, eg:stack/queue/list")
	count     = flag.Int("n", 10, "number of elements to insert")
	rowSize   = flag.Int("row", 5, "values printed per row")
	workerNum = flag.Int("worker-num", 0, "soak worker number, 0 disables the soak")
	ops       = flag.Int("ops", 100000, "operations per soak worker")
	verbose   = flag.Bool("v", false, "debug logging")
)

var errInvalidFlag = errors.New("invalid flag")

func validate() error {
	if *count < 0 {
		return fmt.Errorf("-n %d: %w", *count, errInvalidFlag)
	}
	if *rowSize <= 0 {
		return fmt.Errorf("-row %d: %w", *rowSize, errInvalidFlag)
	}
	if *workerNum < 0 || *ops < 0 {
		return fmt.Errorf("-worker-num %d -ops %d: %w", *workerNum, *ops, errInvalidFlag)
	}
	return nil
}

func main() {
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if err := validate(); err != nil {
		log.Fatal(err)
	}

	if err := demo(os.Stdout, *structure, *count, *rowSize); err != nil {
		log.Fatal(err)
	}

	if *workerNum == 0 {
		return
	}

	rec := stats.NewHistogramRecorder()
	start := time.Now()
	if err := runWorkload(context.Background(), *structure, *workerNum, *ops, rec); err != nil {
		log.Fatal(err)
	}
	log.Infof("[Stats]structure:%s,worker:%d,ops:%d,cost:%s", *structure, *workerNum, *ops, time.Since(start))
	rec.Report()
}

// demo fills structure with 0..n-1, doubles every element and prints the
// result row by row.
func demo(out io.Writer, structure string, n, row int) error {
	var (
		name   string
		values iter.Seq[int]
	)
	switch structure {
	case "stack":
		s := stack.New[int]()
		for i := 0; i < n; i++ {
			s.Push(i)
		}
		for v := range s.Refs() {
			*v *= 2
		}
		name, values = "Stack", s.All()
	case "queue":
		q := queue.New[int]()
		for i := 0; i < n; i++ {
			q.Enqueue(i)
		}
		for v := range q.Refs() {
			*v *= 2
		}
		name, values = "Queue", q.All()
	case "list":
		// nodes are shared and never changed, so build a doubled copy
		l := functional.New[int]()
		doubled := functional.New[int]()
		for i := 0; i < n; i++ {
			l = l.Push(i)
			doubled = doubled.Push(i * 2)
		}
		log.Debugf("original list:%s", l)
		name, values = "List", doubled.All()
	default:
		return fmt.Errorf("%q: %w", structure, errUnknownStructure)
	}

	fmt.Fprintln(out, name)
	for chunk := range seq.Chunks(values, row) {
		parts := make([]string, len(chunk))
		for i, v := range chunk {
			parts[i] = fmt.Sprint(v)
		}
		fmt.Fprintln(out, strings.Join(parts, " "))
	}
	return nil
}
