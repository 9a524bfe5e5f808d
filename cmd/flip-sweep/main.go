package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/not-a-book-club/simulations/pkg/flipper"
	"github.com/not-a-book-club/simulations/pkg/grid"
)

type dirSet struct {
	dx, dy int64
}

func (d dirSet) String() string {
	return fmt.Sprintf("dx=%d dy=%d", d.dx, d.dy)
}

type sweepResult struct {
	dir      dirSet
	set      int
	coverage float64
	finalX   int
	finalY   int
}

func main() {
	width := flag.Int("w", 128, "grid width")
	height := flag.Int("h", 128, "grid height")
	steps := flag.Int("steps", 0, "elementary steps per direction (0 means 4*w*h)")
	maxDir := flag.Int("max", 12, "sweep dx over 1..max and dy over 0..max")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 10, "how many results to print")
	flag.Parse()

	n := *steps
	if n <= 0 {
		n = 4 * *width * *height
	}

	var dirs []dirSet
	for dx := 1; dx <= *maxDir; dx++ {
		for dy := 0; dy <= *maxDir; dy++ {
			dirs = append(dirs, dirSet{dx: int64(dx), dy: int64(dy)})
		}
	}

	fmt.Printf("Sweeping %d directions on %dx%d (%d workers, %d steps each)\n",
		len(dirs), *width, *height, *workers, n)

	jobs := make(chan dirSet)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for dir := range jobs {
				results <- runDirection(*width, *height, dir, n)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, dir := range dirs {
			jobs <- dir
		}
		close(jobs)
	}()

	start := time.Now()
	var all []sweepResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].coverage != all[j].coverage {
			return all[i].coverage > all[j].coverage
		}
		if all[i].dir.dx != all[j].dir.dx {
			return all[i].dir.dx < all[j].dir.dx
		}
		return all[i].dir.dy < all[j].dir.dy
	})
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d directions (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		fmt.Printf("%2d) coverage=%.4f set=%d final=(%d,%d) %s\n",
			i+1, res.coverage, res.set, res.finalX, res.finalY, res.dir)
	}
}

// runDirection walks a fresh grid for the given number of steps and
// measures how much of it ends up set.
func runDirection(w, h int, dir dirSet, steps int) sweepResult {
	g := grid.NewBitGrid(w, h)
	ray := flipper.NewWithGrid(g, flipper.Vec{X: dir.dx, Y: dir.dy})
	ray.Step(steps)

	set := g.CountSet()
	x, y, _ := ray.Cell()
	return sweepResult{
		dir:      dir,
		set:      set,
		coverage: float64(set) / float64(w*h),
		finalX:   x,
		finalY:   y,
	}
}