// Command unionc generates typed unions from .union files.
//
// Usage:
//
//	unionc [-out file] [-config unionc.yaml] [-v] [path]
//
// path is a .union file or a directory holding exactly one, "." if not given. The
// generated file is written next to the .union file unless -out says otherwise; -out -
// writes to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	gfs "github.com/gopherfs/fs"
	osfs "github.com/gopherfs/fs/io/os"
	"github.com/gostdlib/base/context"
	"github.com/mattn/go-isatty"
	perrors "github.com/pkg/errors"

	"github.com/bearlytools/variant/errors"
	"github.com/bearlytools/variant/internal/config"
	"github.com/bearlytools/variant/internal/idl"
	"github.com/bearlytools/variant/internal/render"
	"github.com/bearlytools/variant/internal/writer"
)

const ext = ".union"

// cliFS is the filesystem unionc reads from and writes to.
type cliFS interface {
	fs.ReadFileFS
	fs.ReadDirFS
	fs.StatFS
	gfs.Writer
}

type options struct {
	path   string
	out    string
	config string
	logger *log.Logger
}

func main() {
	ctx := context.Background()

	opts := options{}
	flag.StringVar(&opts.out, "out", "", "the file to write, defaults to the .union file's name with the configured output suffix; - writes to stdout")
	flag.StringVar(&opts.config, "config", "", "the unionc.yaml to use, defaults to the one next to the .union file if it exists")
	verbose := flag.Bool("v", isTerminal(), "log what is being done")
	flag.Parse()

	args := flag.Args()
	switch len(args) {
	case 0:
		opts.path = "."
	case 1:
		opts.path = args[0]
	default:
		exitf("usage: unionc [flags] [path]")
	}

	opts.logger = log.New(io.Discard, "", 0)
	if *verbose {
		opts.logger = log.New(os.Stderr, "unionc: ", 0)
	}

	fsys, err := osfs.New()
	if err != nil {
		exitf("can't access OS: %s", err)
	}

	if err := run(ctx, fsys, opts, os.Stdout); err != nil {
		exit(err)
	}
}

func isTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func run(ctx context.Context, fsys cliFS, opts options, stdout io.Writer) error {
	src, err := findUnionFile(fsys, opts.path)
	if err != nil {
		return errors.E(ctx, errors.CatUser, errors.TypeFS, err)
	}

	content, err := fsys.ReadFile(src)
	if err != nil {
		return errors.E(ctx, errors.CatUser, errors.TypeFS, perrors.Wrapf(err, "problem reading file %s", src))
	}
	opts.logger.Println("parsing:", src)

	file, err := idl.Parse(ctx, content)
	if err != nil {
		return errors.E(ctx, errors.CatUser, errors.TypeParse, perrors.Wrap(err, src))
	}

	cfgPath := opts.config
	if cfgPath == "" {
		cfgPath = filepath.Join(filepath.Dir(src), config.FileName)
	} else if _, err := fsys.Stat(cfgPath); err != nil {
		return errors.E(ctx, errors.CatUser, errors.TypeParameter, perrors.Wrap(err, "problem with -config"))
	}
	cfg, err := config.Load(fsys, cfgPath)
	if err != nil {
		return errors.E(ctx, errors.CatUser, errors.TypeConfig, err)
	}

	out, err := render.Render(ctx, file, filepath.Base(src), cfg)
	if err != nil {
		return errors.E(ctx, errors.CatInternal, errors.TypeRender, err)
	}

	if opts.out == "-" {
		if _, err := stdout.Write(out); err != nil {
			return errors.E(ctx, errors.CatInternal, errors.TypeFS, err)
		}
		return nil
	}

	dst := opts.out
	if dst == "" {
		dst = cfg.OutputPath(src)
	}

	w, err := writer.New(writer.WithFS(fsys))
	if err != nil {
		return errors.E(ctx, errors.CatInternal, errors.TypeFS, err)
	}
	wrote, err := w.Write(ctx, dst, out)
	if err != nil {
		return errors.E(ctx, errors.CatUser, errors.TypeFS, err)
	}
	if wrote {
		opts.logger.Printf("wrote %d unions to %s", len(file.Unions), dst)
	} else {
		opts.logger.Println("unchanged:", dst)
	}
	return nil
}

// findUnionFile returns path if it is a file, or the only .union file in path if it is
// a directory.
func findUnionFile(fsys cliFS, path string) (string, error) {
	fi, err := fsys.Stat(path)
	if err != nil {
		return "", perrors.Wrapf(err, "could not stat %s", path)
	}
	if !fi.IsDir() {
		return path, nil
	}

	entries, err := fsys.ReadDir(path)
	if err != nil {
		return "", perrors.Wrapf(err, "could not read the directory %s", path)
	}
	found := ""
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ext {
			continue
		}
		if found != "" {
			return "", perrors.Errorf("there is more than one %s file in %s", ext, path)
		}
		found = e.Name()
	}
	if found == "" {
		return "", perrors.Errorf("did not find a %s file in %s", ext, path)
	}
	return filepath.Join(path, found), nil
}

func exit(i ...any) {
	fmt.Fprintln(os.Stderr, i...)
	os.Exit(1)
}

func exitf(s string, i ...any) {
	fmt.Fprintf(os.Stderr, s+"\n", i...)
	os.Exit(1)
}
