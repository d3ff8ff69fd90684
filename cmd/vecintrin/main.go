// Command vecintrin runs the masked vector exercises on the simulated
// vector unit and checks them against their serial versions.
//
// Usage:
//
//	vecintrin [flags]
//
// Examples:
//
//	vecintrin -s 3
//	vecintrin -s 64 -l
//	vecintrin -exercise all -w 8
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/cwbudde/algo-par/vector/exercises"
	"github.com/cwbudde/algo-par/vector/vecintrin"
)

type options struct {
	size     int
	showLog  bool
	help     bool
	width    int
	native   bool
	seed     int64
	exercise string
}

// parseArgs parses the command line. Any parse error has already been
// reported with the usage text when it returns.
func parseArgs(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("vecintrin", flag.ContinueOnError)
	fs.IntVar(&o.size, "s", 16, "workload size N (shorthand)")
	fs.IntVar(&o.size, "size", 16, "workload size N")
	fs.BoolVar(&o.showLog, "l", false, "print vector unit execution log (shorthand)")
	fs.BoolVar(&o.showLog, "log", false, "print vector unit execution log")
	fs.BoolVar(&o.help, "?", false, "this message")
	fs.BoolVar(&o.help, "help", false, "this message")
	fs.IntVar(&o.width, "w", vecintrin.DefaultWidth, "vector width")
	fs.BoolVar(&o.native, "native", false, "use the host's float32 SIMD width instead of -w")
	fs.Int64Var(&o.seed, "seed", 1, "random seed for the workload")
	fs.StringVar(&o.exercise, "exercise", "clampedexp", "exercise to run: abs, clampedexp, sum or all")
	fs.Usage = usage
	err := fs.Parse(args)
	return o, err
}

func main() {
	o, err := parseArgs(os.Args[1:])
	if err != nil {
		os.Exit(1)
	}
	if o.help {
		usage()
		os.Exit(1)
	}
	if o.size <= 0 {
		fmt.Printf("Error: Workload size is set to %d (<0).\n", o.size)
		os.Exit(255)
	}

	opts := []vecintrin.Option{vecintrin.WithWidth(o.width)}
	if o.native {
		opts = append(opts, vecintrin.WithNativeWidth())
	}
	u := vecintrin.NewUnit(opts...)
	wl := exercises.InitValues(rand.New(rand.NewSource(o.seed)), o.size, u.Width())

	var names []string
	switch o.exercise {
	case "all":
		names = []string{"abs", "clampedexp", "sum"}
	case "abs", "clampedexp", "sum":
		names = []string{o.exercise}
	default:
		fmt.Fprintf(os.Stderr, "error: unknown exercise %q\n", o.exercise)
		os.Exit(1)
	}

	ok := true
	for _, name := range names {
		u.Logger().Reset()
		wl.ResetOutputs()

		var passed bool
		switch name {
		case "abs":
			passed = runElementwise(u, wl, "ABSOLUTE VALUE", "(example)", o.showLog, func() {
				exercises.AbsSerial(wl.Values, wl.Gold, wl.N)
				exercises.AbsVector(u, wl.Values, wl.Output, wl.N)
			})
		case "clampedexp":
			passed = runElementwise(u, wl, "CLAMPED EXPONENT", "(required)", o.showLog, func() {
				exercises.ClampedExpSerial(wl.Values, wl.Exponents, wl.Gold, wl.N)
				exercises.ClampedExpVector(u, wl.Values, wl.Exponents, wl.Output, wl.N)
			})
		case "sum":
			passed = runSum(u, wl, o.showLog)
		}
		ok = ok && passed
	}

	if !ok {
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("Usage: %s [options]\n", os.Args[0])
	fmt.Printf("Program Options:\n")
	fmt.Printf("  -s  --size <N>     Use workload size N (Default = 16)\n")
	fmt.Printf("  -l  --log          Print vector unit execution log\n")
	fmt.Printf("  -w  <W>            Vector width (Default = %d)\n", vecintrin.DefaultWidth)
	fmt.Printf("  -native            Use the host SIMD width\n")
	fmt.Printf("  -seed <S>          Workload random seed (Default = 1)\n")
	fmt.Printf("  -exercise <name>   abs, clampedexp, sum or all (Default = clampedexp)\n")
	fmt.Printf("  -?  --help         This message\n")
}

func runElementwise(u *vecintrin.Unit, wl *exercises.Workload, title, tag string, showLog bool, compute func()) bool {
	compute()

	fmt.Printf("\x1b[1;31m%s\x1b[0m %s \n", title, tag)
	m := exercises.Verify(wl.Output, wl.Gold, wl.N, exercises.Epsilon)
	if m != nil {
		if err := m.Report(os.Stdout, wl); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	} else {
		fmt.Printf("Results matched with answer!\n")
	}
	printUnit(u, showLog)

	fmt.Printf("************************ Result Verification *************************\n")
	if m != nil {
		fmt.Printf("@@@ Failed!!!\n")
		return false
	}
	fmt.Printf("Passed!!!\n")
	return true
}

func runSum(u *vecintrin.Unit, wl *exercises.Workload, showLog bool) bool {
	fmt.Printf("\n\x1b[1;31mARRAY SUM\x1b[0m (bonus) \n")

	got, err := exercises.ArraySumVector(u, wl.Values, wl.N)
	if err != nil {
		fmt.Printf("Must have N %% VECTOR_WIDTH == 0 for this problem (VECTOR_WIDTH is %d)\n", u.Width())
		return true
	}
	gold := exercises.ArraySumSerial(wl.Values, wl.N)
	printUnit(u, showLog)

	if !exercises.SumMatches(gold, got) {
		fmt.Printf("Expected %f, got %f.\n", gold, got)
		fmt.Printf("@@@ Failed!!!\n")
		return false
	}
	fmt.Printf("Passed!!!\n")
	return true
}

func printUnit(u *vecintrin.Unit, showLog bool) {
	if showLog {
		if err := u.Logger().PrintLog(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
	if err := u.Logger().PrintStats(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
}
