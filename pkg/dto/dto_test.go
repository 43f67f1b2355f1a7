package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type audit struct {
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

type account struct {
	audit
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Nickname *string `json:"nickname,omitempty"`
	Secret   string  `json:"-"`
	Plain    string
	internal string
}

func sample() account {
	return account{
		audit:    audit{CreatedAt: time.Date(2024, 5, 1, 15, 30, 0, 123456789, time.FixedZone("X", 2*3600))},
		ID:       7,
		Email:    "a@example.com",
		Password: "hash",
		Secret:   "s",
		Plain:    "p",
		internal: "i",
	}
}

func TestToRecord_Struct(t *testing.T) {
	rec := ToRecord(sample())

	assert.Equal(t, int64(7), rec["id"])
	assert.Equal(t, "p", rec["Plain"])
	assert.Nil(t, rec["nickname"])
	assert.Contains(t, rec, "nickname")
	assert.Contains(t, rec, "created_at")
	assert.Contains(t, rec, "deleted_at")
	assert.NotContains(t, rec, "Secret")
	assert.NotContains(t, rec, "internal")
}

func TestToRecord_PointerMapAndUnsupported(t *testing.T) {
	a := sample()
	assert.Equal(t, int64(7), ToRecord(&a)["id"])

	var nilAccount *account
	assert.Nil(t, ToRecord(nilAccount))
	assert.Nil(t, ToRecord(42))

	src := Record{"k": "v"}
	rec := ToRecord(src)
	rec["k"] = "changed"
	assert.Equal(t, "v", src["k"])

	assert.Equal(t, Record{"a": 1}, ToRecord(map[string]int{"a": 1}))
}

func TestToDTO_ExcludeAlwaysWins(t *testing.T) {
	for _, opts := range []Options{
		{Exclude: []string{"password"}},
		{Exclude: []string{"password"}, Include: []string{"password", "id"}},
		{Exclude: []string{"password"}, RemoveNulls: true, SerializeDates: true},
	} {
		rec := ToDTO(sample(), opts)
		assert.NotContains(t, rec, "password")
	}
}

func TestToDTO_Include(t *testing.T) {
	rec := ToDTO(sample(), Options{Include: []string{"id", "email"}})

	assert.Equal(t, Record{"id": int64(7), "email": "a@example.com"}, rec)
}

func TestToDTO_SerializeDates(t *testing.T) {
	deleted := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	a := sample()
	a.DeletedAt = &deleted

	rec := ToDTO(a, Options{SerializeDates: true})

	assert.Equal(t, "2024-05-01T13:30:00.123Z", rec["created_at"])
	assert.Equal(t, "2024-06-02T00:00:00.000Z", rec["deleted_at"])

	raw := ToDTO(a, Options{})
	_, isTime := raw["created_at"].(time.Time)
	assert.True(t, isTime)
}

func TestToDTO_RemoveNullsKeepsFalsyValues(t *testing.T) {
	rec := ToDTO(Record{
		"nil":    nil,
		"nilPtr": (*string)(nil),
		"zero":   0,
		"empty":  "",
		"false":  false,
	}, Options{RemoveNulls: true})

	assert.Equal(t, Record{"zero": 0, "empty": "", "false": false}, rec)
}

func TestToDTOs(t *testing.T) {
	recs := ToDTOs([]account{sample(), sample()}, Options{Include: []string{"id"}})

	require.Len(t, recs, 2)
	assert.Equal(t, Record{"id": int64(7)}, recs[1])
	assert.Empty(t, ToDTOs([]account(nil), Options{}))
}

func TestPickAndOmit(t *testing.T) {
	picked := Pick(sample(), "id", "missing")
	assert.Equal(t, Record{"id": int64(7)}, picked)

	omitted := Omit(sample(), "password", "created_at", "deleted_at", "nickname", "Plain")
	assert.Equal(t, Record{"id": int64(7), "email": "a@example.com"}, omitted)
}

func TestSanitize(t *testing.T) {
	rec := Sanitize(Record{"name": `<script>alert("x")</script>`, "n": 1})

	assert.Equal(t, "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;", rec["name"])
	assert.Equal(t, 1, rec["n"])
}
