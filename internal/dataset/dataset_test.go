package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr error
	}{
		{name: "default buckets", input: "0,500,1000,2000,4000,6000,8000,10000", want: Default()},
		{name: "spaces", input: " 1, 2 ,3 ", want: []int{1, 2, 3}},
		{name: "single", input: "42", want: []int{42}},
		{name: "equal neighbours", input: "5,5,7", want: []int{5, 5, 7}},
		{name: "empty", input: "  ", wantErr: ErrEmpty},
		{name: "descending", input: "10,5", wantErr: ErrUnordered},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_BadNumber(t *testing.T) {
	_, err := Parse("1,two,3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse value 1")
}

func TestMaxValue(t *testing.T) {
	assert.Equal(t, 140.0, MaxValue(20, len(Default())))
	assert.Equal(t, 0.0, MaxValue(20, 1))
	assert.Equal(t, 0.0, MaxValue(20, 0))
}

func TestFormat_RoundTrip(t *testing.T) {
	s := Format(Default())
	assert.Equal(t, "0,500,1000,2000,4000,6000,8000,10000", s)

	got, err := Parse(s)
	require.NoError(t, err)
	assert.True(t, Equal(Default(), got))
}

func TestStatic_Load(t *testing.T) {
	src := &Static{Values: []int{1, 2, 3}}
	got, err := src.Load()
	require.NoError(t, err)
	got[0] = 99
	assert.Equal(t, 1, src.Values[0])

	_, err = (&Static{}).Load()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestFile_Load(t *testing.T) {
	dir := t.TempDir()

	list := filepath.Join(dir, "list.yaml")
	require.NoError(t, os.WriteFile(list, []byte("[0, 100, 200]\n"), 0o644))
	got, err := (&File{Path: list}).Load()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 100, 200}, got)

	doc := filepath.Join(dir, "doc.yaml")
	require.NoError(t, os.WriteFile(doc, []byte("buckets:\n  - 10\n  - 20\n"), 0o644))
	got, err = (&File{Path: doc}).Load()
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20}, got)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("[3, 1]\n"), 0o644))
	_, err = (&File{Path: bad}).Load()
	assert.ErrorIs(t, err, ErrUnordered)

	_, err = (&File{Path: filepath.Join(dir, "missing.yaml")}).Load()
	assert.Error(t, err)
}
