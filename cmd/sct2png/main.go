// Command sct2png converts SCT texture containers to PNG files.
//
// Inputs may be files or directories; directories are walked recursively
// for *.sct files. Output mirrors the input tree under --out unless --flat
// collapses it.
package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/spf13/pflag"

	"github.com/skyrien/sct"
)

func main() {
	out := pflag.StringP("out", "o", ".", "output directory")
	jobs := pflag.IntP("jobs", "j", runtime.NumCPU(), "number of parallel decode workers")
	flat := pflag.Bool("flat", false, "write all PNGs directly into the output directory")
	quiet := pflag.BoolP("quiet", "q", false, "suppress per-file progress output")
	pflag.Parse()

	if pflag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: sct2png [flags] <file-or-dir>...")
		pflag.PrintDefaults()
		os.Exit(2)
	}

	var files []job
	for _, arg := range pflag.Args() {
		found, err := collect(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sct2png: %s: %v\n", arg, err)
			os.Exit(1)
		}
		files = append(files, found...)
	}

	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "sct2png: no .sct files found")
		os.Exit(1)
	}

	conv := &converter{
		outDir: *out,
		flat:   *flat,
		quiet:  *quiet,
		made:   make(map[string]bool),
	}

	workers := *jobs
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for _, f := range files {
		wg.Add(1)
		sem <- struct{}{}
		go func(f job) {
			defer wg.Done()
			defer func() { <-sem }()
			conv.convert(f)
		}(f)
	}
	wg.Wait()

	if n := conv.failures(); n > 0 {
		fmt.Fprintf(os.Stderr, "sct2png: %d of %d files failed\n", n, len(files))
		os.Exit(1)
	}
}

// job is one input file plus the root it was found under, so the output
// tree can mirror the input tree.
type job struct {
	path string
	rel  string
}

// collect expands a CLI argument into jobs.
func collect(arg string) ([]job, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return []job{{path: arg, rel: filepath.Base(arg)}}, nil
	}

	var jobs []job
	err = filepath.WalkDir(arg, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".sct") {
			return nil
		}

		rel, err := filepath.Rel(arg, path)
		if err != nil {
			return err
		}
		jobs = append(jobs, job{path: path, rel: rel})

		return nil
	})

	return jobs, err
}

// converter writes PNGs and memoizes created output directories so each
// directory is created at most once across workers.
type converter struct {
	outDir string
	flat   bool
	quiet  bool

	mu     sync.Mutex
	made   map[string]bool
	failed int
}

func (c *converter) convert(f job) {
	img, err := sct.ReadFile(f.path)
	if err != nil {
		c.fail(f.path, err)
		return
	}

	dst := c.outputPath(f)
	if err := c.ensureDir(filepath.Dir(dst)); err != nil {
		c.fail(f.path, err)
		return
	}

	out, err := os.Create(dst)
	if err != nil {
		c.fail(f.path, err)
		return
	}
	defer func() { _ = out.Close() }()

	if err := png.Encode(out, img); err != nil {
		c.fail(f.path, err)
		return
	}

	if !c.quiet {
		fmt.Printf("%s -> %s\n", f.path, dst)
	}
}

func (c *converter) outputPath(f job) string {
	rel := f.rel
	if c.flat {
		rel = filepath.Base(rel)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + ".png"

	return filepath.Join(c.outDir, rel)
}

func (c *converter) ensureDir(dir string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.made[dir] {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	c.made[dir] = true

	return nil
}

func (c *converter) fail(path string, err error) {
	fmt.Fprintf(os.Stderr, "sct2png: %s: %v\n", path, err)

	c.mu.Lock()
	c.failed++
	c.mu.Unlock()
}

func (c *converter) failures() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.failed
}
