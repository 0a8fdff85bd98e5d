package plan

import (
	"bytes"
	"sync"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"field-mapper/internal/mapping"
	"field-mapper/internal/match"
)

func userColumns() []mapping.Column {
	return []mapping.Column{
		{Name: "p_name", Type: "varchar(32)"},
		{Name: "id", Type: "bigint"},
		{Name: "status", Type: "tinyint"},
	}
}

func TestPropose_FuzzyWithBoost(t *testing.T) {
	fields := []mapping.Field{{Name: "name", Code: "name", Type: "String"}}

	result := NewAutoMapper(DefaultConfig()).Propose(fields, userColumns(), mapping.Set{})

	e, ok := result.Mappings.Get("name")
	require.True(t, ok, spew.Sdump(result))
	assert.Equal(t, "p_name", e.TblField)
	assert.Equal(t, mapping.RuleSmartMap, e.Rule)
	require.NotNil(t, e.Score)
	assert.InDelta(t, 0.9667, *e.Score, 1e-3)

	require.Len(t, result.Proposals, 1)
	p := result.Proposals[0]
	assert.False(t, p.Exact)
	require.NotNil(t, p.Candidate)
	assert.InDelta(t, 2.0/3.0, p.Candidate.NameScore, 1e-9)
	assert.InDelta(t, 0.3, p.Candidate.Boost, 1e-9)
	assert.Empty(t, result.Unmapped)
}

func TestPropose_ExactMatchByName(t *testing.T) {
	fields := []mapping.Field{{Name: "Status"}}

	result := NewAutoMapper(DefaultConfig()).Propose(fields, userColumns(), mapping.Set{})

	e, ok := result.Mappings.Get("Status")
	require.True(t, ok)
	assert.Equal(t, "status", e.TblField)
	assert.Equal(t, mapping.RuleDirectMap, e.Rule)
	assert.Nil(t, e.Score)

	require.Len(t, result.Proposals, 1)
	assert.True(t, result.Proposals[0].Exact)
	assert.Nil(t, result.Proposals[0].Candidate)
}

func TestPropose_ExactMatchByCode(t *testing.T) {
	fields := []mapping.Field{{Name: "User Name", Code: "user_name"}}
	columns := []mapping.Column{
		{Name: "user_names"}, // fuzzy score would be high
		{Name: "USER_NAME"},
	}

	set := ProposeMappings(fields, columns, mapping.Set{})

	e, ok := set.Get("User Name")
	require.True(t, ok)
	assert.Equal(t, "USER_NAME", e.TblField)
	assert.Equal(t, mapping.RuleDirectMap, e.Rule)
	assert.Nil(t, e.Score)
}

func TestPropose_ExactBeatsFuzzy(t *testing.T) {
	fields := []mapping.Field{{Name: "user_id"}}
	columns := []mapping.Column{
		{Name: "userid"}, // total 1.457
		{Name: "User_ID"},
	}

	set := ProposeMappings(fields, columns, mapping.Set{})

	e, _ := set.Get("user_id")
	assert.Equal(t, "User_ID", e.TblField)
	assert.Nil(t, e.Score)
}

func TestPropose_BoostedPastOneIsDirectMapWithScore(t *testing.T) {
	fields := []mapping.Field{{Name: "user_id"}}
	columns := []mapping.Column{{Name: "userid"}}

	set := ProposeMappings(fields, columns, mapping.Set{})

	e, ok := set.Get("user_id")
	require.True(t, ok)
	assert.Equal(t, mapping.RuleDirectMap, e.Rule)
	require.NotNil(t, e.Score)
	// sim 6/7 plus two group boosts, not clamped to 1
	assert.InDelta(t, 6.0/7.0+0.6, *e.Score, 1e-9)
}

func TestPropose_BelowThresholdLeftUnmapped(t *testing.T) {
	fields := []mapping.Field{{Name: "email"}}

	result := NewAutoMapper(DefaultConfig()).Propose(fields, userColumns(), mapping.Set{})

	assert.False(t, result.Mappings.Has("email"))
	assert.Zero(t, result.Mappings.Len())
	assert.Empty(t, result.Proposals)

	require.Len(t, result.Unmapped, 1)
	u := result.Unmapped[0]
	assert.Equal(t, "email", u.Field.Name)
	assert.Len(t, u.Candidates, 3)
	assert.Equal(t, "id", u.Candidates[0].Column.Name)
	assert.Contains(t, u.Reason, `best match "id" (0.20)`)

	warnings := result.Diagnostics.ByCode("unmapped_field")
	require.Len(t, warnings, 1)
	assert.Equal(t, "email", warnings[0].Field)
}

func TestPropose_ThresholdIsExclusive(t *testing.T) {
	fields := []mapping.Field{{Name: "abcde"}}
	columns := []mapping.Column{{Name: "abcxy"}} // similarity exactly 0.6

	set := ProposeMappings(fields, columns, mapping.Set{})

	assert.False(t, set.Has("abcde"))
}

func TestPropose_CustomThreshold(t *testing.T) {
	fields := []mapping.Field{{Name: "abcde"}}
	columns := []mapping.Column{{Name: "abcxy"}}

	mapper := NewAutoMapper(Config{Threshold: 0.5, MaxCandidates: 1})
	result := mapper.Propose(fields, columns, mapping.Set{})

	e, ok := result.Mappings.Get("abcde")
	require.True(t, ok)
	assert.Equal(t, mapping.RuleSmartMap, e.Rule)
	assert.InDelta(t, 0.6, e.ScoreValue(), 1e-9)
	assert.Equal(t, 0.5, mapper.Config().Threshold)
}

func TestPropose_TwoFieldsMayShareColumn(t *testing.T) {
	fields := []mapping.Field{
		{Name: "cust_name"},
		{Name: "customer_name"},
	}
	columns := []mapping.Column{{Name: "c_name"}, {Name: "id"}}

	result := NewAutoMapper(DefaultConfig()).Propose(fields, columns, mapping.Set{})

	a, ok := result.Mappings.Get("cust_name")
	require.True(t, ok)
	b, ok := result.Mappings.Get("customer_name")
	require.True(t, ok)

	assert.Equal(t, "c_name", a.TblField)
	assert.Equal(t, "c_name", b.TblField)
	assert.InDelta(t, 0.9667, a.ScoreValue(), 1e-3)
	assert.InDelta(t, 0.7615, b.ScoreValue(), 1e-3)

	assert.Len(t, result.Diagnostics.ByCode("shared_column"), 2)
}

func TestPropose_ExistingEntriesUntouched(t *testing.T) {
	existing := mapping.NewSet(mapping.Entry{BoField: "name", TblField: "id", Rule: mapping.RuleUppercase})
	fields := []mapping.Field{{Name: "name"}, {Name: "status"}}

	result := NewAutoMapper(DefaultConfig()).Propose(fields, userColumns(), existing)

	e, _ := result.Mappings.Get("name")
	assert.Equal(t, "id", e.TblField)
	assert.Equal(t, mapping.RuleUppercase, e.Rule)

	assert.True(t, result.Mappings.Has("status"))
	require.Len(t, result.Proposals, 1)
	assert.Equal(t, "status", result.Proposals[0].Field.Name)

	// The caller's set is not modified.
	assert.Equal(t, 1, existing.Len())
	assert.False(t, existing.Has("status"))
}

func TestPropose_ExistingMappingSharingColumnReported(t *testing.T) {
	existing := mapping.NewSet(mapping.Entry{BoField: "title", TblField: "p_name"})
	fields := []mapping.Field{{Name: "name"}}

	result := NewAutoMapper(DefaultConfig()).Propose(fields, userColumns(), existing)

	shared := result.Diagnostics.ByCode("shared_column")
	require.Len(t, shared, 1)
	assert.Equal(t, "name", shared[0].Field)
	assert.Equal(t, "p_name", shared[0].Column)
}

func TestPropose_DuplicateFieldNamesMappedOnce(t *testing.T) {
	fields := []mapping.Field{{Name: "status"}, {Name: "status", Code: "id"}}

	result := NewAutoMapper(DefaultConfig()).Propose(fields, userColumns(), mapping.Set{})

	assert.Equal(t, 1, result.Mappings.Len())
	e, _ := result.Mappings.Get("status")
	assert.Equal(t, "status", e.TblField)
}

func TestPropose_TiesGoToFirstColumn(t *testing.T) {
	fields := []mapping.Field{{Name: "abcd"}}
	columns := []mapping.Column{{Name: "abcx"}, {Name: "abcy"}}

	set := ProposeMappings(fields, columns, mapping.Set{})

	e, ok := set.Get("abcd")
	require.True(t, ok)
	assert.Equal(t, "abcx", e.TblField)
}

func TestPropose_TypeMismatchWarning(t *testing.T) {
	fields := []mapping.Field{{Name: "create_time", Type: "DateTime"}}
	columns := []mapping.Column{{Name: "created_at", Type: "int"}}

	result := NewAutoMapper(DefaultConfig()).Propose(fields, columns, mapping.Set{})

	require.True(t, result.Mappings.Has("create_time"))
	assert.Len(t, result.Diagnostics.ByCode("type_mismatch"), 1)
}

func TestPropose_EmptyInputs(t *testing.T) {
	existing := mapping.NewSet(mapping.Entry{BoField: "a", TblField: "b"})
	mapper := NewAutoMapper(DefaultConfig())

	result := mapper.Propose(nil, userColumns(), existing)
	assert.Equal(t, existing.Entries(), result.Mappings.Entries())
	assert.Empty(t, result.Proposals)

	result = mapper.Propose([]mapping.Field{{Name: "name"}}, nil, mapping.Set{})
	assert.Zero(t, result.Mappings.Len())
	require.Len(t, result.Unmapped, 1)
	assert.Equal(t, "no columns to match", result.Unmapped[0].Reason)
	assert.Empty(t, result.Unmapped[0].Candidates)
}

func TestPropose_WithLexicon(t *testing.T) {
	lex := match.NewLexicon(match.Group{Key: "phone", Variants: []string{"mobile"}})
	fields := []mapping.Field{{Name: "phone"}}
	columns := []mapping.Column{{Name: "mobile"}}

	// similarity 1/6 alone stays below the threshold
	assert.False(t, ProposeMappings(fields, columns, mapping.Set{}).Has("phone"))

	mapper := NewAutoMapper(Config{Threshold: 0.4}, WithLexicon(lex))
	result := mapper.Propose(fields, columns, mapping.Set{})

	e, ok := result.Mappings.Get("phone")
	require.True(t, ok)
	assert.InDelta(t, 1.0/6.0+0.3, e.ScoreValue(), 1e-9)
}

func TestPropose_LogsDecisions(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	fields := []mapping.Field{{Name: "name"}, {Name: "id"}, {Name: "email"}}
	NewAutoMapper(DefaultConfig(), WithLogger(logger)).Propose(fields, userColumns(), mapping.Set{})

	out := buf.String()
	assert.Contains(t, out, `"message":"fuzzy match accepted"`)
	assert.Contains(t, out, `"rule":"Smart Map"`)
	assert.Contains(t, out, `"message":"exact match"`)
	assert.Contains(t, out, `"message":"field left unmapped"`)
}

func TestPropose_ConcurrentCallsShareSnapshot(t *testing.T) {
	existing := mapping.NewSet(mapping.Entry{BoField: "status", TblField: "status"})
	fields := []mapping.Field{{Name: "name"}, {Name: "id"}, {Name: "status"}}
	mapper := NewAutoMapper(DefaultConfig())

	var wg sync.WaitGroup
	results := make([]mapping.Set, 8)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = mapper.Propose(fields, userColumns(), existing).Mappings
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, results[0].Entries(), r.Entries())
		assert.Equal(t, 3, r.Len())
	}
	assert.Equal(t, 1, existing.Len())
}

func TestSeed(t *testing.T) {
	fields := []mapping.Field{
		{Name: "ID"},
		{Name: "Full Name", Code: "p_name"},
		{Name: "name"},
		{Name: "email"},
	}

	set := Seed(fields, userColumns())

	require.Equal(t, 2, set.Len())

	e, _ := set.Get("ID")
	assert.Equal(t, "id", e.TblField)
	assert.Nil(t, e.Score)

	e, _ = set.Get("Full Name")
	assert.Equal(t, "p_name", e.TblField)

	// Seed never fuzzy-matches.
	assert.False(t, set.Has("name"))
	assert.False(t, set.Has("email"))
}

func TestSetMappingAfterProposal(t *testing.T) {
	fields := []mapping.Field{{Name: "name"}}
	set := ProposeMappings(fields, userColumns(), mapping.Set{})

	set = set.SetMapping("name", "status")

	e, _ := set.Get("name")
	assert.Equal(t, "status", e.TblField)
	assert.Equal(t, mapping.RuleDirectMap, e.Rule)
	assert.Nil(t, e.Score)
}
