package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"quatex/internal/quaternion"
)

var arithOps = map[string]int{
	"add":  2,
	"mul":  2,
	"conj": 1,
	"norm": 1,
	"inv":  1,
}

// arith <op> <q1> [q2]: one arithmetic operation.
func arithCmd() *cobra.Command {
	var modulus int64
	cmd := &cobra.Command{
		Use:   "arith <add|mul|conj|norm|inv> <q1> [q2]",
		Short: "Quaternion arithmetic mod m, or over the integers without --modulus",
		Long: "Quaternions are written as [w, xi, yj, zk] or w,x,y,z.\n" +
			"Without --modulus the operation runs over the integers; inv always needs a modulus.\n" +
			"Put -- before operands that start with a minus sign.",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := strings.ToLower(args[0])
			arity, ok := arithOps[op]
			if !ok {
				return fmt.Errorf("unknown operation %q", args[0])
			}
			if len(args)-1 != arity {
				return fmt.Errorf("%s takes %d operand(s)", op, arity)
			}
			qs := make([]quaternion.Quaternion, 0, arity)
			for _, a := range args[1:] {
				q, err := quaternion.Parse(a)
				if err != nil {
					return err
				}
				qs = append(qs, q)
			}

			res, err := evalArith(op, modulus, qs)
			if err != nil {
				return err
			}
			fmt.Fprintln(out(cmd), res)
			return nil
		},
	}
	cmd.Flags().Int64VarP(&modulus, "modulus", "m", 0, "reduce modulo m (0 means integers)")
	return cmd
}

func evalArith(op string, m int64, qs []quaternion.Quaternion) (string, error) {
	if m == 0 {
		// Components up to MaxModulus keep every Hamilton term, and the sum
		// of four, inside int64.
		for _, q := range qs {
			for _, c := range q.Components() {
				if c > quaternion.MaxModulus || c < -quaternion.MaxModulus {
					return "", fmt.Errorf("%s: components must be within ±%d without --modulus", q, quaternion.MaxModulus)
				}
			}
		}
		switch op {
		case "add":
			return quaternion.Add(qs[0], qs[1]).String(), nil
		case "mul":
			return quaternion.Multiply(qs[0], qs[1]).String(), nil
		case "conj":
			return quaternion.Conjugate(qs[0]).String(), nil
		case "norm":
			return fmt.Sprint(quaternion.NormSquared(qs[0])), nil
		default:
			return "", fmt.Errorf("%s needs --modulus", op)
		}
	}

	ring, err := quaternion.NewRing(m)
	if err != nil {
		return "", err
	}
	switch op {
	case "add":
		return ring.Add(qs[0], qs[1]).String(), nil
	case "mul":
		return ring.Multiply(qs[0], qs[1]).String(), nil
	case "conj":
		return ring.Conjugate(qs[0]).String(), nil
	case "norm":
		return fmt.Sprint(ring.NormSquared(qs[0])), nil
	default:
		inv, ok := ring.Invert(qs[0])
		if !ok {
			return "", fmt.Errorf("%s has no inverse mod %d (norm %d)", ring.ReduceQ(qs[0]), m, ring.NormSquared(qs[0]))
		}
		return inv.String(), nil
	}
}
