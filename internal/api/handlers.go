package api

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"field-mapper/internal/mapping"
	"field-mapper/internal/match"
	"field-mapper/internal/plan"
	"field-mapper/internal/transform"
)

type proposeRequest struct {
	Fields   []mapping.Field  `json:"fields"`
	Columns  []mapping.Column `json:"columns"`
	Mappings mapping.Set      `json:"mappings"`
}

type proposal struct {
	BoField     string                    `json:"boField"`
	TblField    string                    `json:"tblField"`
	Rule        mapping.Rule              `json:"rule"`
	Score       *float64                  `json:"score,omitempty"`
	Exact       bool                      `json:"exact"`
	NameScore   float64                   `json:"nameScore,omitempty"`
	Boost       float64                   `json:"boost,omitempty"`
	Affinity    *match.TypeAffinityResult `json:"affinity,omitempty"`
	Explanation string                    `json:"explanation,omitempty"`
}

type candidate struct {
	Column string  `json:"column"`
	Score  float64 `json:"score"`
}

type unmapped struct {
	Field      string      `json:"field"`
	Reason     string      `json:"reason"`
	Candidates []candidate `json:"candidates"`
}

type proposeResponse struct {
	Mappings  mapping.Set `json:"mappings"`
	Proposals []proposal  `json:"proposals"`
	Unmapped  []unmapped  `json:"unmapped"`
}

// POST /api/mappings/propose
func ProposeHandler(mapper *plan.AutoMapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req proposeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		result := mapper.Propose(req.Fields, req.Columns, req.Mappings)

		resp := proposeResponse{
			Mappings:  result.Mappings,
			Proposals: make([]proposal, 0, len(result.Proposals)),
			Unmapped:  make([]unmapped, 0, len(result.Unmapped)),
		}

		for _, p := range result.Proposals {
			out := proposal{
				BoField:  p.Entry.BoField,
				TblField: p.Entry.TblField,
				Rule:     p.Entry.Rule,
				Score:    p.Entry.Score,
				Exact:    p.Exact,
			}

			if p.Candidate != nil {
				out.NameScore = p.Candidate.NameScore
				out.Boost = p.Candidate.Boost
				affinity := p.Candidate.Affinity
				out.Affinity = &affinity
			}

			if text, ok := plan.ExplainEntry(p.Entry); ok {
				out.Explanation = text
			}

			resp.Proposals = append(resp.Proposals, out)
		}

		for _, u := range result.Unmapped {
			out := unmapped{
				Field:      u.Field.Name,
				Reason:     u.Reason,
				Candidates: make([]candidate, 0, len(u.Candidates)),
			}
			for _, cand := range u.Candidates {
				out.Candidates = append(out.Candidates, candidate{Column: cand.Column.Name, Score: cand.Total})
			}

			resp.Unmapped = append(resp.Unmapped, out)
		}

		log.Debug().
			Int("fields", len(req.Fields)).
			Int("columns", len(req.Columns)).
			Int("proposed", len(resp.Proposals)).
			Int("unmapped", len(resp.Unmapped)).
			Msg("proposed mappings")

		c.JSON(http.StatusOK, resp)
	}
}

type overrideRequest struct {
	Mappings mapping.Set `json:"mappings"`
	BoField  string      `json:"boField"`
	TblField string      `json:"tblField"`
}

type mappingsResponse struct {
	Mappings mapping.Set `json:"mappings"`
}

// POST /api/mappings/override
func OverrideHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req overrideRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		if req.BoField == "" || req.TblField == "" {
			badRequest(c, "boField and tblField are required")
			return
		}

		c.JSON(http.StatusOK, mappingsResponse{Mappings: req.Mappings.SetMapping(req.BoField, req.TblField)})
	}
}

type ruleRequest struct {
	Mappings mapping.Set  `json:"mappings"`
	BoField  string       `json:"boField"`
	Rule     mapping.Rule `json:"rule"`
}

// POST /api/mappings/rule
func RuleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ruleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		set, ok := req.Mappings.WithRule(req.BoField, req.Rule)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "no mapping for field " + strconv.Quote(req.BoField)})
			return
		}

		c.JSON(http.StatusOK, mappingsResponse{Mappings: set})
	}
}

type previewRequest struct {
	Rule       mapping.Rule `json:"rule"`
	Sample     *string      `json:"sample"`
	ColumnType string       `json:"columnType"`
}

// POST /api/preview
func PreviewHandler(registry *transform.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req previewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		sample := transform.SampleValue(req.ColumnType)
		if req.Sample != nil {
			sample = *req.Sample
		}

		c.JSON(http.StatusOK, registry.Preview(req.Rule, sample))
	}
}

// GET /api/explain?score=0.9
func ExplainHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Query("score")

		score, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
			badRequest(c, "score must be a number")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"score":       score,
			"explanation": plan.Explain(score),
		})
	}
}

// GET /api/rules
func RulesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"rules": mapping.Rules()})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
