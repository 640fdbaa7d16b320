package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func golden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "colexpr", cmd.Use)

	for _, name := range []string{"functions", "window", "parse", "eval"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
	assert.Equal(t, "v", cmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestInvalidFlags(t *testing.T) {
	_, err := execute(t, "", "functions", "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = execute(t, "", "functions", "--timezone", "Nowhere/Special")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = execute(t, "", "functions", "--log-level", "chatty")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestDeprecationNotice(t *testing.T) {
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"parse", "toDegrees(x)"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, errOut.String(), "[WARN] toDegrees is deprecated, use degrees instead")

	errOut.Reset()
	cmd = NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"parse", "toDegrees(x)", "--log-level", "off"})
	require.NoError(t, cmd.Execute())
	assert.Empty(t, errOut.String())
}

func TestFunctionsCommand(t *testing.T) {
	out, err := execute(t, "", "functions", "upper", "toDegrees", "substring_index", "--format", "yaml")
	require.NoError(t, err)
	golden(t).Assert(t, "functions_selected", []byte(out))

	out, err = execute(t, "", "functions", "--group", "hash")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "sha2")
	assert.NotContains(t, out, "upper")

	out, err = execute(t, "", "functions", "--category", "aggregate", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "approx_count_distinct"`)
	assert.NotContains(t, out, `"category": "scalar"`)

	_, err = execute(t, "", "functions", "uper")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "upper")
}

func TestWindowCommand(t *testing.T) {
	out, err := execute(t, "", "window", "2024-05-01T09:13:00Z", "10 minutes",
		"--slide", "5 minutes", "--start", "2 minutes", "--format", "json")
	require.NoError(t, err)
	golden(t).Assert(t, "window_sliding", []byte(out))

	out, err = execute(t, "", "window", "1969-12-31T23:59:58Z", "5 seconds")
	require.NoError(t, err)
	assert.Contains(t, out, "tumbling(5s, start=0s)")
	assert.Contains(t, out, "1969-12-31T23:59:55Z")
	assert.Contains(t, out, "1970-01-01T00:00:00Z")

	_, err = execute(t, "", "window", "2024-05-01T09:13:00Z", "1 month")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	_, err = execute(t, "", "window", "not a time", "5 seconds")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestParseCommand(t *testing.T) {
	out, err := execute(t, "", "parse", "upper(name) = 'ANN'", "--format", "json")
	require.NoError(t, err)
	golden(t).Assert(t, "parse_comparison", []byte(out))

	out, err = execute(t, "", "parse", "a + b * 2")
	require.NoError(t, err)
	assert.Equal(t, "(a + (b * 2))\ncolumns: a, b\ndepth: 3\n", out)

	_, err = execute(t, "", "parse", "nope(x)")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	out, err = execute(t, "", "parse", "nope(x)", "--raw")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "nope(x)\n"))

	_, err = execute(t, "", "parse", "a +")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "syntax error")
}

func TestEvalCommand(t *testing.T) {
	out, err := execute(t, "", "eval", "testdata/request.yaml", "--format", "json")
	require.NoError(t, err)
	golden(t).Assert(t, "eval_document", []byte(out))

	doc := "columns: [\"concat_ws('-', a, b)\"]\nrows:\n  - {a: x, b: y}\n"
	out, err = execute(t, doc, "eval", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "x-y")
	assert.Contains(t, out, "(1 rows)")

	out, err = execute(t, "", "eval", "-e", "upper(name)", "-e", "age * 2 AS twice",
		"--row", `{"name": "ann", "age": 21}`, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"upper(name)": "ANN"`)
	assert.Contains(t, out, `"twice": 42`)

	_, err = execute(t, "", "eval")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = execute(t, "", "eval", "-e", "upper(missing)", "--row", `{"name": "ann"}`)
	assert.NoError(t, err)

	_, err = execute(t, "", "eval", "testdata/request.yaml", "-e", "upper(missing)")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "cannot resolve")

	_, err = execute(t, "", "eval", "testdata/absent.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
