package joinery

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestJoin(t *testing.T) {
	data := []int{1, 2, 3, 4, 5}
	tests := []struct {
		sep  Separator
		want string
	}{
		{NoSeparator{}, "12345"},
		{Space{}, "1 2 3 4 5"},
		{Comma{}, "1,2,3,4,5"},
		{CommaSpace{}, "1, 2, 3, 4, 5"},
		{Dot{}, "1.2.3.4.5"},
		{Slash{}, "1/2/3/4/5"},
		{Underscore{}, "1_2_3_4_5"},
		{Dash{}, "1-2-3-4-5"},
		{Literal(" | "), "1 | 2 | 3 | 4 | 5"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%T", tt.sep), func(t *testing.T) {
			is := is.New(t)
			is.Equal(Join(data, tt.sep), tt.want)
		})
	}
}

func TestJoinEmptyAndSingle(t *testing.T) {
	is := is.New(t)

	is.Equal(Join([]int(nil), Comma{}), "")
	is.Equal(Join([]int{}, CommaSpace{}), "")
	is.Equal(Join([]int{7}, Comma{}), "7")
	is.Equal(Join([]string{"lonely"}, Dash{}), "lonely")
}

func TestJoinIsIdempotent(t *testing.T) {
	is := is.New(t)

	data := []string{"a", "b", "c"}
	sep := Underscore{}
	is.Equal(Join(data, sep), Join(data, sep))
}

func TestJoinSeq(t *testing.T) {
	is := is.New(t)

	upto := func(n int) iter.Seq[int] {
		return func(yield func(int) bool) {
			for i := 0; i < n; i++ {
				if !yield(i) {
					return
				}
			}
		}
	}

	is.Equal(JoinSeq(upto(10), NoSeparator{}), "0123456789")
	is.Equal(JoinSeq(upto(3), Slash{}), "0/1/2")
	is.Equal(JoinSeq(upto(0), Comma{}), "")
}

func TestWrite(t *testing.T) {
	is := is.New(t)

	var buf bytes.Buffer
	is.NoErr(Write(&buf, []int{1, 2, 3}, Dot{}))
	is.Equal(buf.String(), "1.2.3")
}

func TestWriteFailsFast(t *testing.T) {
	is := is.New(t)

	// room for "1,2" only; the next separator write must fail
	fw := &failWriter{limit: 3}
	err := Write(fw, []int{1, 2, 3, 4, 5}, Comma{})
	is.True(errors.Is(err, errSink))
	is.Equal(fw.buf.String(), "1,2")
	is.Equal(fw.after, 0) // no writes attempted once the sink has failed
}

func TestWriteFuncRendererErrorAborts(t *testing.T) {
	is := is.New(t)

	errBad := errors.New("bad element")
	render := func(w io.Writer, n int) error {
		if n < 0 {
			return errBad
		}
		_, err := io.WriteString(w, strconv.Itoa(n))
		return err
	}

	var sb strings.Builder
	err := WriteFunc(&sb, sliceSeq([]int{1, 2, -1, 4}), Comma{}, render)
	is.True(errors.Is(err, errBad))
	is.Equal(sb.String(), "1,2,")
}

func TestAdaptRenderer(t *testing.T) {
	is := is.New(t)

	quoted := func(w io.Writer, s string) error {
		_, err := fmt.Fprintf(w, "%q", s)
		return err
	}
	byName := AdaptRenderer(quoted, func(n int) string {
		return strconv.Itoa(n)
	})

	var sb strings.Builder
	is.NoErr(WriteFunc(&sb, sliceSeq([]int{1, 2}), CommaSpace{}, byName))
	is.Equal(sb.String(), `"1", "2"`)
}
