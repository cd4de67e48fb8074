package seqctl

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/sequence"
	"github.com/kbukum/seqkit/validation"
	"github.com/kbukum/seqkit/version"
)

const (
	keyID   = "id"
	keyName = "name"
)

// RootCommand builds the seqctl command tree.
func (a *App) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "seqctl",
		Short: "Apply sequence operations to JSON arrays",
		Long: `seqctl applies the seqkit sequence operations to JSON arrays.

Arrays are passed as JSON arguments, or as "-" to read one from stdin.
Elements must be scalars (numbers, strings, booleans or null) except for
lookup, which works on arrays of objects.

Examples:
  seqctl intersect '[1,2,3]' '[2,3,4]'
  echo '[3,1,1,2]' | seqctl distinct -
  seqctl range '[1,2,3,4]' 2 3`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.finish(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default: ./seqctl.yml)")
	flags.StringVar(&a.envFile, "env-file", "", ".env file to load")
	flags.StringVarP(&a.format, "format", "o", FormatJSON, "output format: json or yaml")
	flags.IntVar(&a.indent, "indent", 0, "indent width for output")
	flags.BoolVar(&a.debug, "debug", false, "log each operation to stderr")

	root.AddCommand(
		a.intersectCmd(),
		a.unionCmd(),
		a.unionSingleCmd(),
		a.distinctCmd(),
		a.rangeCmd(),
		a.takeCmd(),
		a.swapCmd(),
		a.equalCmd(),
		a.insertSortedCmd(),
		a.removeFirstCmd(),
		a.emptyToNullCmd(),
		a.lookupCmd(),
		a.classifyCmd(),
		a.versionCmd(),
	)
	return root
}

// exactArgs requires exactly the named positional arguments.
func exactArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, got []string) error {
		if len(got) < len(names) {
			return errors.MissingField(names[len(got)])
		}
		if len(got) > len(names) {
			return errors.InvalidInput("", fmt.Sprintf("%s takes %d arguments, got %d", cmd.Name(), len(names), len(got)))
		}
		return nil
	}
}

func (a *App) array(cmd *cobra.Command, field, arg string) ([]any, error) {
	data, err := readArg(cmd.InOrStdin(), arg)
	if err != nil {
		return nil, err
	}
	return decodeArray(field, data)
}

func (a *App) scalar(cmd *cobra.Command, field, arg string) (any, error) {
	data, err := readArg(cmd.InOrStdin(), arg)
	if err != nil {
		return nil, err
	}
	return decodeScalar(field, data)
}

func parseInt(field, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.InvalidFormat(field, "integer").WithCause(err)
	}
	return n, nil
}

// done logs the operation and writes its result.
func (a *App) done(cmd *cobra.Command, op string, inputLen int, result any, extra ...interface{}) error {
	kvs := []interface{}{logger.FieldOperation, op, logger.FieldInputLen, inputLen}
	if s, ok := result.([]any); ok {
		kvs = append(kvs, logger.FieldOutputLen, len(s))
	}
	a.log.Debug("operation applied", logger.Fields(append(kvs, extra...)...))
	return writeResult(cmd.OutOrStdout(), a.cfg.Output, result)
}

func (a *App) intersectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intersect A B",
		Short: "Elements of A that also occur in B, in A's order",
		Args:  exactArgs("A", "B"),
		RunE: func(cmd *cobra.Command, argv []string) error {
			left, err := a.array(cmd, "A", argv[0])
			if err != nil {
				return err
			}
			right, err := a.array(cmd, "B", argv[1])
			if err != nil {
				return err
			}
			return a.done(cmd, "intersect", len(left), sequence.Intersect(left, right))
		},
	}
}

func (a *App) unionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "union A B",
		Short: "Append the elements of B that A lacks",
		Args:  exactArgs("A", "B"),
		RunE: func(cmd *cobra.Command, argv []string) error {
			target, err := a.array(cmd, "A", argv[0])
			if err != nil {
				return err
			}
			other, err := a.array(cmd, "B", argv[1])
			if err != nil {
				return err
			}
			n := len(target)
			sequence.Union(&target, other)
			return a.done(cmd, "union", n, target)
		},
	}
}

func (a *App) unionSingleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "union-single A V",
		Short: "Append V to A unless it is already present",
		Args:  exactArgs("A", "V"),
		RunE: func(cmd *cobra.Command, argv []string) error {
			target, err := a.array(cmd, "A", argv[0])
			if err != nil {
				return err
			}
			v, err := a.scalar(cmd, "V", argv[1])
			if err != nil {
				return err
			}
			n := len(target)
			sequence.UnionSingle(&target, v)
			return a.done(cmd, "union-single", n, target, logger.FieldChanged, len(target) != n)
		},
	}
}

func (a *App) distinctCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distinct A",
		Short: "Drop repeated elements, keeping first occurrences",
		Args:  exactArgs("A"),
		RunE: func(cmd *cobra.Command, argv []string) error {
			items, err := a.array(cmd, "A", argv[0])
			if err != nil {
				return err
			}
			return a.done(cmd, "distinct", len(items), sequence.Distinct(items))
		},
	}
}

func (a *App) rangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range A START END",
		Short: "Elements from START to END inclusive, clamped to A's bounds",
		Args:  exactArgs("A", "START", "END"),
		RunE: func(cmd *cobra.Command, argv []string) error {
			items, err := a.array(cmd, "A", argv[0])
			if err != nil {
				return err
			}
			start, err := parseInt("START", argv[1])
			if err != nil {
				return err
			}
			end, err := parseInt("END", argv[2])
			if err != nil {
				return err
			}
			return a.done(cmd, "range", len(items), sequence.Range(items, start, end))
		},
	}
}

func (a *App) takeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "take A N",
		Short: "The first N elements of A",
		Args:  exactArgs("A", "N"),
		RunE: func(cmd *cobra.Command, argv []string) error {
			items, err := a.array(cmd, "A", argv[0])
			if err != nil {
				return err
			}
			n, err := parseInt("N", argv[1])
			if err != nil {
				return err
			}
			if appErr := validation.New().NonNegative("N", n).Validate(); appErr != nil {
				return appErr
			}
			return a.done(cmd, "take", len(items), sequence.Take(items, n))
		},
	}
}

func (a *App) swapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "swap A I J",
		Short: "Exchange the elements at I and J",
		Args:  exactArgs("A", "I", "J"),
		RunE: func(cmd *cobra.Command, argv []string) error {
			items, err := a.array(cmd, "A", argv[0])
			if err != nil {
				return err
			}
			i, err := parseInt("I", argv[1])
			if err != nil {
				return err
			}
			j, err := parseInt("J", argv[2])
			if err != nil {
				return err
			}
			if err := sequence.TrySwap(items, i, j); err != nil {
				return err
			}
			return a.done(cmd, "swap", len(items), items)
		},
	}
}

func (a *App) equalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equal A B",
		Short: "Whether A and B hold equal elements in the same order",
		Args:  exactArgs("A", "B"),
		RunE: func(cmd *cobra.Command, argv []string) error {
			left, err := a.array(cmd, "A", argv[0])
			if err != nil {
				return err
			}
			right, err := a.array(cmd, "B", argv[1])
			if err != nil {
				return err
			}
			return a.done(cmd, "equal", len(left), sequence.Equal(left, right))
		},
	}
}

func (a *App) insertSortedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insert-sorted A V...",
		Short: "Insert values into the ascending array A, skipping ones already present",
		Args: func(cmd *cobra.Command, argv []string) error {
			if len(argv) < 2 {
				return exactArgs("A", "V")(cmd, argv)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, argv []string) error {
			items, err := a.array(cmd, "A", argv[0])
			if err != nil {
				return err
			}
			values := make([]any, 0, len(argv)-1)
			for _, arg := range argv[1:] {
				v, err := a.scalar(cmd, "V", arg)
				if err != nil {
					return err
				}
				values = append(values, v)
			}
			result, inserted, err := insertSorted(items, values)
			if err != nil {
				return err
			}
			return a.done(cmd, "insert-sorted", len(items), result, logger.FieldChanged, inserted > 0)
		},
	}
}

func (a *App) removeFirstCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-first A V",
		Short: "Remove the first element of A equal to V",
		Args:  exactArgs("A", "V"),
		RunE: func(cmd *cobra.Command, argv []string) error {
			items, err := a.array(cmd, "A", argv[0])
			if err != nil {
				return err
			}
			v, err := a.scalar(cmd, "V", argv[1])
			if err != nil {
				return err
			}
			n := len(items)
			removed := sequence.RemoveFirst(&items, v)
			return a.done(cmd, "remove-first", n, items, logger.FieldChanged, removed)
		},
	}
}

func (a *App) emptyToNullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "empty-to-null A",
		Short: "Print null for an empty array, else the array",
		Args:  exactArgs("A"),
		RunE: func(cmd *cobra.Command, argv []string) error {
			items, err := a.array(cmd, "A", argv[0])
			if err != nil {
				return err
			}
			var result any
			if s := sequence.EmptyToNull(items); s != nil {
				result = s
			}
			return a.done(cmd, "empty-to-null", len(items), result)
		},
	}
}

func (a *App) lookupCmd() *cobra.Command {
	var (
		by     string
		unique bool
	)
	cmd := &cobra.Command{
		Use:   "lookup KEY A",
		Short: "Find the first object in A whose id or name is KEY",
		Long: `Find the first object in A whose id or name is KEY.

With --unique, an array holding the key more than once is rejected.`,
		Args: exactArgs("KEY", "A"),
		RunE: func(cmd *cobra.Command, argv []string) error {
			v := validation.New().
				Required("by", by).
				OneOf("by", by, []string{keyID, keyName}).
				Required("KEY", argv[0])
			if appErr := v.Validate(); appErr != nil {
				return appErr
			}
			data, err := readArg(cmd.InOrStdin(), argv[1])
			if err != nil {
				return err
			}
			records, err := decodeRecords("A", by, data)
			if err != nil {
				return err
			}

			var (
				found record
				ok    bool
			)
			switch by {
			case keyID:
				id, err := parseInt("KEY", argv[0])
				if err != nil {
					return err
				}
				found, ok, err = lookupByID(records, id, unique)
				if err != nil {
					return err
				}
			case keyName:
				found, ok, err = lookupByName(records, argv[0], unique)
				if err != nil {
					return err
				}
			}
			if !ok {
				return errors.NotFound("element", argv[0]).WithDetail("by", by)
			}
			a.log.Debug("operation applied", logger.Fields(
				logger.FieldOperation, "lookup",
				logger.FieldInputLen, len(records),
				"by", by,
			))
			return writeResult(cmd.OutOrStdout(), a.cfg.Output, map[string]any(found))
		},
	}
	cmd.Flags().StringVar(&by, "by", keyID, "key field: id or name")
	cmd.Flags().BoolVar(&unique, "unique", false, "fail when the key occurs more than once")
	return cmd
}

func lookupByID(records []record, id int, unique bool) (record, bool, error) {
	if unique {
		l, err := sequence.ExtendWithUniqueKey(records, record.GetID)
		if err != nil {
			return nil, false, err
		}
		r, ok := l.Get(id)
		return r, ok, nil
	}
	r, ok := sequence.ExtendWithID(records).WithID(id)
	return r, ok, nil
}

func lookupByName(records []record, name string, unique bool) (record, bool, error) {
	if unique {
		l, err := sequence.ExtendWithUniqueKey(records, record.GetName)
		if err != nil {
			return nil, false, err
		}
		r, ok := l.Get(name)
		return r, ok, nil
	}
	r, ok := sequence.ExtendWithName(records).WithName(name)
	return r, ok, nil
}

func (a *App) classifyCmd() *cobra.Command {
	var inherit bool
	cmd := &cobra.Command{
		Use:   "classify VALUE",
		Short: "Whether VALUE is a sequence",
		Long: `Whether the JSON VALUE is a sequence. Arrays are; objects, scalars
and null are not, even objects shaped like arrays ({"0": 1, "length": 1}).

With --inherit, an array is first wrapped in a delegating sequence.`,
		Args: exactArgs("VALUE"),
		RunE: func(cmd *cobra.Command, argv []string) error {
			data, err := readArg(cmd.InOrStdin(), argv[0])
			if err != nil {
				return err
			}
			v, err := decodeAny("VALUE", data)
			if err != nil {
				return err
			}
			if items, isArray := v.([]any); isArray && inherit {
				v = sequence.Inherit(&items).Extend()
			}
			result := map[string]any{
				"kind":     kindOf(v),
				"sequence": sequence.IsArrayOrInheritedArray(v),
			}
			if _, isInherited := v.(*sequence.Inherited[any]); isInherited {
				result["kind"] = "inherited"
			}
			a.log.Debug("operation applied", logger.Fields(logger.FieldOperation, "classify", "kind", result["kind"]))
			return writeResult(cmd.OutOrStdout(), a.cfg.Output, result)
		},
	}
	cmd.Flags().BoolVar(&inherit, "inherit", false, "wrap arrays in a delegating sequence first")
	return cmd
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  exactArgs(),
		RunE: func(cmd *cobra.Command, argv []string) error {
			return writeResult(cmd.OutOrStdout(), a.cfg.Output, version.Get())
		},
	}
}
