package tab_test

import (
	"bytes"
	"context"
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/tabutils/pkg/tab"
	"github.com/ib-77/tabutils/pkg/tab/codec"
	"github.com/ib-77/tabutils/pkg/tab/config"
	"github.com/ib-77/tabutils/pkg/tab/dtype"
	"github.com/ib-77/tabutils/pkg/tab/iterx"
	"github.com/ib-77/tabutils/pkg/tab/maybe"
	"github.com/ib-77/tabutils/pkg/tab/predicate"
	"github.com/ib-77/tabutils/pkg/tab/record"
	"github.com/ib-77/tabutils/pkg/tab/separator"
	"github.com/ib-77/tabutils/pkg/tab/text"
)

const sales = "Name;Price;name;Sold On;Qty\n" +
	"Apple;$1,234.50;apple;2015-01-02;3\n" +
	"Pear;;pear;n/a;2\n" +
	"Fig;€12;;;1\n"

func lines(ctx context.Context, t *testing.T, raw []byte, encoding string) iter.Seq[string] {
	t.Helper()

	var buf bytes.Buffer
	for chunk, err := range iterx.ChunkReader(ctx, bytes.NewReader(raw), 8) {
		require.NoError(t, err)
		buf.Write(chunk)
	}
	decoded, err := codec.Decode(buf.Bytes(), encoding)
	require.NoError(t, err)
	return strings.Lines(decoded)
}

// TestCleaningPipeline reads a small semicolon separated file in the
// configured encoding and runs it through header cleanup, hole filling,
// number parsing and JSON export.
func TestCleaningPipeline(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cfg, err := config.Parse([]byte("strip_zeros: false\nencoding: windows-1252\n"))
	require.NoError(t, err)
	opts := predicate.FromConfig(cfg)

	encoded, err := codec.Encode(sales, cfg.Encoding, false)
	require.NoError(t, err)
	require.NotContains(t, string(encoded), "€", "euro sign is a single byte in windows-1252")

	next, stop := iter.Pull(lines(ctx, t, encoded, cfg.Encoding))
	defer stop()

	head, ok := next()
	require.True(t, ok)
	raw := strings.Split(strings.TrimSpace(head), ";")
	header := slices.Collect(text.Dedupe(text.Underscorify(slices.Values(raw))))
	require.Equal(t, []string{"name", "price", "name_2", "sold_on", "qty"}, header)

	var rows []*tab.Record
	for {
		line, ok := next()
		if !ok {
			break
		}
		r := tab.NewRecord()
		for i, cell := range strings.Split(strings.TrimSpace(line), ";") {
			r.Set(header[i], cell)
		}
		rows = append(rows, r)
	}
	require.Len(t, rows, 3)

	previous := tab.NewRecord()
	counts := record.Counts{}
	filled := make([]*tab.Record, 0, len(rows))
	for _, r := range rows {
		previous, counts = record.Fill(previous, r, counts)
		filled = append(filled, previous)
	}
	assert.Equal(t, "$1,234.50", filled[1].Value("price", nil))
	assert.Equal(t, "pear", filled[2].Value("name_2", nil))
	assert.Equal(t, "2015-01-02", filled[2].Value("sold_on", nil))
	assert.Equal(t, record.Counts{"name": 0, "price": 0, "name_2": 1, "sold_on": 2, "qty": 0}, counts)

	prices := func(yield func(string) bool) {
		for _, r := range filled {
			if !yield(r.Value("price", "").(string)) {
				return
			}
		}
	}
	seps, err := separator.Infer(prices)
	require.NoError(t, err)
	assert.Equal(t, tab.DefaultSeparators, seps)

	for _, r := range filled {
		price := r.Value("price", "").(string)
		require.True(t, predicate.IsNumeric(price, opts...), price)
		n, _ := predicate.ParseNumber(price, append(opts, predicate.WithSeparators(seps))...)
		r.Set("price", n)

		qty := r.Value("qty", "").(string)
		require.True(t, predicate.IsInt(qty, opts...))
		q, _ := predicate.ParseNumber(qty, opts...)
		r.Set("qty", int(q.IntPart()))
	}

	tally := iterx.Fold(slices.Values(filled), iterx.Tally{}, func(acc iterx.Tally, r *tab.Record) iterx.Tally {
		return iterx.SumAndCount(acc, r.Value("price", nil))
	})
	assert.Equal(t, 3, tally.Count)
	assert.InDelta(t, 827.0, tally.Mean(), 1e-9)

	total := record.Merge(filled, record.On("qty"), record.WithOp(record.Sum))
	assert.Equal(t, 6, total.Value("qty", nil))

	kind, err := dtype.Get(dtype.FromKind(tab.KindOf(filled[0].Value("price", nil))), dtype.Postgres)
	require.NoError(t, err)
	assert.Equal(t, "decimal", kind)

	fig := maybe.Of(filled[2]).Get("price").Map(func(v any) any { return v.(decimal.Decimal).String() })
	assert.Equal(t, "12", fig.Value())
	assert.Equal(t, "unknown", maybe.Of(filled[2]).Get("color").OrElse("unknown"))

	out := record.DFilter(filled[0], []string{"name_2"}, false)
	b, err := codec.MarshalJSON(out)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Apple","price":1234.5,"sold_on":"2015-01-02","qty":3}`, string(b))
}
