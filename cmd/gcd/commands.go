package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	gcd "github.com/sgorgun/gcd-version-2"
	"github.com/sgorgun/gcd-version-2/internal/log"
	"github.com/urfave/cli"
)

var errUsage = errors.New("at least two integer operands are required")

var timeFlag = cli.BoolFlag{
	Name:   "time, t",
	Usage:  `Show elapsed milliseconds`,
	EnvVar: "GCD_TIME",
}

// algorithm groups the fixed and variadic entry points of one GCD method.
type algorithm struct {
	two   func(a, b int32) (int32, int64, error)
	three func(a, b, c int32) (int32, int64, error)
	n     func(a, b int32, others ...int32) (int32, int64, error)
}

var euclidean = algorithm{gcd.TimedEuclidean, gcd.TimedEuclidean3, gcd.TimedEuclideanN}
var stein = algorithm{gcd.TimedStein, gcd.TimedStein3, gcd.TimedSteinN}

func (a algorithm) run(ops []int32) (int32, int64, error) {
	switch len(ops) {
	case 2:
		return a.two(ops[0], ops[1])
	case 3:
		return a.three(ops[0], ops[1], ops[2])
	default:
		return a.n(ops[0], ops[1], ops[2:]...)
	}
}

func parseOperands(ctx *cli.Context) ([]int32, error) {
	args := ctx.Args()
	if len(args) < 2 {
		cli.ShowCommandHelp(ctx, ctx.Command.Name)
		return nil, errUsage
	}
	ops := make([]int32, len(args))
	for i, s := range args {
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			cli.ShowCommandHelp(ctx, ctx.Command.Name)
			return nil, errors.Wrapf(err, "operand %d", i)
		}
		ops[i] = int32(v)
	}
	log.Debugf("operands: %v", ops)
	return ops, nil
}

func gcdCommand(name, alias, usage string, algo algorithm) cli.Command {
	return cli.Command{
		Name:      name,
		Aliases:   []string{alias},
		Usage:     usage,
		ArgsUsage: "<a> <b> [c ...]",
		Flags:     []cli.Flag{timeFlag},
		Action: func(ctx *cli.Context) error {
			ops, err := parseOperands(ctx)
			if err != nil {
				return err
			}
			d, elapsed, err := algo.run(ops)
			if err != nil {
				return errors.Wrap(err, name)
			}
			fmt.Fprintf(ctx.App.Writer, "gcd = %d\n", d)
			if ctx.Bool("time") {
				fmt.Fprintf(ctx.App.Writer, "elapsed = %d ms\n", elapsed)
			}
			return nil
		},
	}
}

var euclidCmd = gcdCommand("euclid", "e", "GCD by the Euclidean algorithm", euclidean)

var steinCmd = gcdCommand("stein", "s", "GCD by the Stein (binary) algorithm", stein)

var extCmd = cli.Command{
	Name:      "ext",
	Aliases:   []string{"x"},
	Usage:     "GCD with Bézout coefficients by the extended Euclidean algorithm",
	ArgsUsage: "<a> <b>",
	Action: func(ctx *cli.Context) error {
		ops, err := parseOperands(ctx)
		if err != nil {
			return err
		}
		if len(ops) != 2 {
			cli.ShowCommandHelp(ctx, "ext")
			return errors.Errorf("ext takes exactly two operands, got %d", len(ops))
		}
		x, y, d, err := gcd.ExtEuclidean(ops[0], ops[1])
		if err != nil {
			return errors.Wrap(err, "ext")
		}
		fmt.Fprintf(ctx.App.Writer, "%d = %d*%d + %d*%d\n", d, x, ops[0], y, ops[1])
		return nil
	},
}

var compareCmd = cli.Command{
	Name:      "compare",
	Aliases:   []string{"c"},
	Usage:     "Runs both algorithms and reports their results and timings",
	ArgsUsage: "<a> <b> [c ...]",
	Action: func(ctx *cli.Context) error {
		ops, err := parseOperands(ctx)
		if err != nil {
			return err
		}
		e, eMs, err := euclidean.run(ops)
		if err != nil {
			return errors.Wrap(err, "euclid")
		}
		s, sMs, err := stein.run(ops)
		if err != nil {
			return errors.Wrap(err, "stein")
		}
		fmt.Fprintf(ctx.App.Writer, "euclid = %d (%d ms)\n", e, eMs)
		fmt.Fprintf(ctx.App.Writer, "stein  = %d (%d ms)\n", s, sMs)
		if e != s {
			return errors.Errorf("results disagree: euclid %d, stein %d", e, s)
		}
		log.Infof("results agree")
		return nil
	},
}
