package host

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	q, err := ParseQuery("?create_index_field=1&name=SearchEngine")
	require.NoError(t, err)
	require.Equal(t, "1", q.Get("create_index_field"))
	require.Equal(t, "SearchEngine", q.Get("name"))
	require.Equal(t, "", q.Get("missing"))

	q, err = ParseQuery("")
	require.NoError(t, err)
	require.Equal(t, "", q.Get("create_index_field"))

	_, err = ParseQuery("a=%zz")
	require.Error(t, err)
}

func TestHostParamTrimsInput(t *testing.T) {
	q, err := ParseQuery("create_index_field=+1+")
	require.NoError(t, err)

	h := Host{Input: q}
	require.Equal(t, "1", h.Param("create_index_field"))
}

func TestHostNilRegistries(t *testing.T) {
	var h Host
	require.Nil(t, h.AllFields())
	require.Nil(t, h.AllTemplates())
	require.Nil(t, h.FieldTemplates("search_index"))
	require.Equal(t, "text", h.T("text"))
	require.Equal(t, "", h.Param("create_index_field"))
}

func TestCatalogTranslate(t *testing.T) {
	c := Catalog{"Index field": "Indeksikenttä", "Empty": ""}
	require.Equal(t, "Indeksikenttä", c.Translate("Index field"))
	require.Equal(t, "Empty", c.Translate("Empty"))
	require.Equal(t, "Other", c.Translate("Other"))
}

func TestFieldName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "search_index", want: "search_index"},
		{in: " search index ", want: "search_index"},
		{in: "search--index!!", want: "search_index"},
		{in: "__body__", want: "body"},
		{in: "!!!", want: ""},
		{in: "Summary2", want: "Summary2"},
		{in: strings.Repeat("a", 130), want: strings.Repeat("a", 128)},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, FieldName(tc.in), tc.in)
		require.Equal(t, tc.want, NameSanitizer{}.FieldName(tc.in), tc.in)
	}
}

func TestIsTextareaType(t *testing.T) {
	require.True(t, IsTextareaType(FieldtypeTextarea))
	require.True(t, IsTextareaType(FieldtypeTextareaLanguage))
	require.False(t, IsTextareaType("FieldtypeText"))
}
