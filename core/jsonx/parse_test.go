package jsonx

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valyala/fastjson"
)

func TestParseSmartSingleDocument(t *testing.T) {
	r := ParseSmart(`{"x":1}`, false)
	require.True(t, r.Ok())
	require.Equal(t, fastjson.TypeObject, r.Value.Type())
	require.Equal(t, 1, r.Value.GetInt("x"))
}

func TestParseSmartRoundTrip(t *testing.T) {
	docs := []string{
		`null`,
		`true`,
		`-12.5e3`,
		`"hello \"world\""`,
		`[1,2,[3,[4]]]`,
		`{"a":{"b":[{"c":null}]},"d":"x"}`,
	}
	for _, doc := range docs {
		r := ParseSmart(doc, false)
		require.True(t, r.Ok(), "doc %q", doc)
		again := ParseSmart(Pretty(r.Value), false)
		require.True(t, again.Ok(), "pretty of %q", doc)
		require.Equal(t, r.Value.String(), again.Value.String(), "doc %q", doc)
	}
}

func TestParseSmartJSONLines(t *testing.T) {
	r := ParseSmart("{\"a\":1}\n{\"a\":2}", false)
	require.True(t, r.Ok())
	items := r.Value.GetArray()
	require.Len(t, items, 2)
	require.Equal(t, 1, items[0].GetInt("a"))
	require.Equal(t, 2, items[1].GetInt("a"))
}

func TestParseSmartJSONLinesCRLF(t *testing.T) {
	lf := ParseSmart("{\"a\":1}\n{\"a\":2}", false)
	crlf := ParseSmart("{\"a\":1}\r\n{\"a\":2}", false)
	require.True(t, lf.Ok())
	require.True(t, crlf.Ok())
	require.Equal(t, lf.Value.String(), crlf.Value.String())
}

func TestParseSmartJSONLinesBlankLinesIgnored(t *testing.T) {
	r := ParseSmart("\n\n{\"a\":1}\n   \n{\"a\":2}\n", false)
	require.True(t, r.Ok())
	require.Len(t, r.Value.GetArray(), 2)
}

func TestParseSmartJSONLinesPreservesOrder(t *testing.T) {
	r := ParseSmart("1\n2\n3\n4", false)
	require.True(t, r.Ok())
	items := r.Value.GetArray()
	require.Len(t, items, 4)
	for i, item := range items {
		require.Equal(t, i+1, item.GetInt())
	}
}

func TestParseSmartBadLineReportsDocumentError(t *testing.T) {
	input := "{\"ok\":true}\n{bad}"
	r := ParseSmart(input, false)
	require.False(t, r.Ok())
	require.Nil(t, r.Value)

	_, docErr := fastjson.Parse(input)
	require.Error(t, docErr)
	require.Equal(t, docErr.Error(), r.Err.Error())
}

func TestParseSmartRepairTrailingComma(t *testing.T) {
	input := `{"a":1,}`

	r := ParseSmart(input, true)
	require.True(t, r.Ok())
	require.Equal(t, 1, r.Value.GetInt("a"))

	r = ParseSmart(input, false)
	require.False(t, r.Ok())
}

func TestParseSmartRepairNeverFatal(t *testing.T) {
	// Input the repair pass cannot make sense of still produces a plain
	// parse failure, not a repair error.
	r := ParseSmart("", true)
	require.False(t, r.Ok())
	require.Error(t, r.Err)
}

func TestParseSmartKeyOrderPreserved(t *testing.T) {
	r := ParseSmart(`{"z":1,"a":{"y":2,"b":3},"m":4}`, false)
	require.True(t, r.Ok())

	var keys []string
	r.Value.GetObject().Visit(func(key []byte, _ *fastjson.Value) {
		keys = append(keys, string(key))
	})
	require.Equal(t, []string{"z", "a", "m"}, keys)

	keys = nil
	r.Value.GetObject("a").Visit(func(key []byte, _ *fastjson.Value) {
		keys = append(keys, string(key))
	})
	require.Equal(t, []string{"y", "b"}, keys)
}

func TestParseSmartEmptyInputFails(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n", " \r\n "} {
		r := ParseSmart(input, false)
		require.False(t, r.Ok(), "input %q", input)
	}
}

func TestParseSmartNoPartialResults(t *testing.T) {
	r := ParseSmart("{\"a\":1}\nnot json at all", false)
	require.False(t, r.Ok())
	require.Nil(t, r.Value)
}
