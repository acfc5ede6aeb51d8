// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/neurocrista/genemap/internal/cmd/emoji"
	"github.com/neurocrista/genemap/pkg/facts"
	"github.com/neurocrista/genemap/pkg/genes"
	"github.com/neurocrista/genemap/pkg/merge"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// sourceAbbrevs maps each source namespace to its matrix column header.
var sourceAbbrevs = map[facts.SourceID]string{
	facts.SourceIDGO:             "GO",
	facts.SourceIDOMIM:           "OMIM",
	facts.SourceIDHPO:            "HPO",
	facts.SourceIDUniProt:        "UniP",
	facts.SourceIDFaceBase:       "FB",
	facts.SourceIDClinVar:        "CV",
	facts.SourceIDPubMed:         "PM",
	facts.SourceIDGnomAD:         "gn",
	facts.SourceIDNIHReporter:    "NR",
	facts.SourceIDGTEx:           "GT",
	facts.SourceIDClinicalTrials: "CT",
	facts.SourceIDSTRING:         "ST",
}

// SourceAbbrev returns the short matrix header for a source namespace.
func SourceAbbrev(id facts.SourceID) string {
	if abbrev, ok := sourceAbbrevs[id]; ok {
		return abbrev
	}
	return string(id)
}

// GenesToTableData converts merged entities to the per-gene flag matrix.
// One column per source namespace in canonical order, a check mark where
// the source contributed, and a trailing coverage count.
func GenesToTableData(entities []*merge.Entity, registry *genes.Registry, wide bool) Data {
	all := facts.AllSources()

	headers := []string{"SYMBOL"}
	if wide {
		headers = append(headers, "ROLE")
	}
	for _, id := range all {
		headers = append(headers, SourceAbbrev(id))
	}
	headers = append(headers, "SOURCES")

	alignment := make([]Align, 0, len(headers))
	alignment = append(alignment, AlignDefault)
	if wide {
		alignment = append(alignment, AlignDefault)
	}
	for range all {
		alignment = append(alignment, AlignCenter)
	}
	alignment = append(alignment, AlignCenter)

	rows := make([][]string, 0, len(entities))
	for _, entity := range entities {
		row := []string{string(entity.Symbol())}
		if wide {
			role := "-"
			if gene, ok := registry.Get(entity.Symbol()); ok {
				role = gene.Role.Label()
			}
			row = append(row, role)
		}
		for _, id := range all {
			if entity.In(id) {
				row = append(row, emoji.Success)
			} else {
				row = append(row, "-")
			}
		}
		row = append(row, fmt.Sprintf("%d/%d", entity.InCount(), len(all)))
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: alignment,
	}
}

// GeneToTableData converts a single gene to a key-value detail table:
// registry identity first, then per-source presence with native IDs.
func GeneToTableData(gene genes.Gene, entity *merge.Entity) Data {
	headers := []string{"Property", "Value"}

	rows := [][]string{
		{"Symbol", string(gene.Symbol)},
		{"Role", gene.Role.Label()},
		{"NCBI Gene", orDash(gene.NCBI)},
		{"UniProt ID", orDash(gene.UniProt)},
		{"MIM Number", orDash(gene.OMIM)},
		{"Sources", fmt.Sprintf("%d/%d", entity.InCount(), len(facts.AllSources()))},
	}

	for _, id := range facts.AllSources() {
		value := "-"
		if entity.In(id) {
			value = emoji.Success
			if nativeID := entity.NativeID(id); nativeID != "" {
				value = emoji.Success + " " + nativeID
			}
		}
		rows = append(rows, []string{id.Label(), value})
	}

	if fields := summarizeFields(entity); len(fields) > 0 {
		rows = append(rows, fields...)
	}

	return Data{
		Headers: headers,
		Rows:    rows,
	}
}

// SourcesToTableData converts the source roster to table format with
// per-source coverage counts computed from the merged set.
func SourcesToTableData(set *merge.Set) Data {
	headers := []string{"ID", "LABEL", "COVERAGE", "URL"}

	total := set.Len()
	rows := make([][]string, 0, len(facts.AllSources()))
	for _, id := range facts.AllSources() {
		count := 0
		set.ForEach(func(entity *merge.Entity) bool {
			if entity.In(id) {
				count++
			}
			return true
		})

		rows = append(rows, []string{
			string(id),
			id.Label(),
			fmt.Sprintf("%d/%d", count, total),
			id.URL(),
		})
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: []Align{AlignDefault, AlignDefault, AlignCenter, AlignDefault},
	}
}

// summarizeFields renders the merged evidence fields worth surfacing in
// the detail view. Long lists collapse to counts or names, scalars print as-is.
func summarizeFields(entity *merge.Entity) [][]string {
	var rows [][]string

	if v, ok := entity.Field("omim_syndromes"); ok {
		if syndromes, ok := v.([]string); ok && len(syndromes) > 0 {
			rows = append(rows, []string{"Syndromes", strings.Join(syndromes, "; ")})
		}
	}
	if v, ok := entity.Field("phenotypes"); ok {
		if phenotypes, ok := v.([]string); ok && len(phenotypes) > 0 {
			rows = append(rows, []string{"Phenotypes", FormatNumber(int64(len(phenotypes)))})
		}
	}
	if v, ok := entity.Field("protein_name"); ok {
		if name, ok := v.(string); ok && name != "" {
			rows = append(rows, []string{"Protein", name})
		}
	}
	if v, ok := entity.Field("pathogenic_count"); ok {
		if count, ok := v.(int); ok {
			rows = append(rows, []string{"Pathogenic Variants", FormatNumber(int64(count))})
		}
	}
	if v, ok := entity.Field("pubmed_total"); ok {
		if count, ok := v.(int); ok {
			rows = append(rows, []string{"Publications", FormatNumber(int64(count))})
		}
	}
	if v, ok := entity.Field("pli_score"); ok {
		if pli, ok := v.(*float64); ok && pli != nil {
			rows = append(rows, []string{"pLI", fmt.Sprintf("%.3f", *pli)})
		}
	}
	if v, ok := entity.Field("active_grant_count"); ok {
		if count, ok := v.(int); ok && count > 0 {
			rows = append(rows, []string{"Active Grants", FormatNumber(int64(count))})
		}
	}
	if v, ok := entity.Field("top_tissues"); ok {
		if tissues, ok := v.([]facts.TissueExpression); ok && len(tissues) > 0 {
			names := make([]string, len(tissues))
			for i, tissue := range tissues {
				names[i] = tissue.Tissue
			}
			rows = append(rows, []string{"Top Tissues", strings.Join(names, ", ")})
		}
	}
	if v, ok := entity.Field("active_trial_count"); ok {
		if count, ok := v.(int); ok && count > 0 {
			rows = append(rows, []string{"Active Trials", FormatNumber(int64(count))})
		}
	}
	if v, ok := entity.Field("string_partners"); ok {
		if partners, ok := v.([]facts.Partner); ok && len(partners) > 0 {
			names := make([]string, len(partners))
			for i, partner := range partners {
				names[i] = partner.Symbol
			}
			rows = append(rows, []string{"Interaction Partners", strings.Join(names, ", ")})
		}
	}

	return rows
}

// CoverageTiersToTableData converts a coverage report's per-gene counts to
// descending tier rows (how many genes appear in exactly N sources).
func CoverageTiersToTableData(perGene map[string]int) Data {
	headers := []string{"SOURCES", "GENES"}

	tiers := make(map[int]int)
	for _, count := range perGene {
		tiers[count]++
	}

	levels := make([]int, 0, len(tiers))
	for level := range tiers {
		levels = append(levels, level)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(levels)))

	rows := make([][]string, 0, len(levels))
	for _, level := range levels {
		rows = append(rows, []string{
			strconv.Itoa(level),
			strconv.Itoa(tiers[level]),
		})
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignRight},
	}
}

// FormatNumber formats large numbers with comma separators.
func FormatNumber(n int64) string {
	str := strconv.FormatInt(n, 10)
	if len(str) <= 3 {
		return str
	}

	// Add commas every 3 digits
	result := ""
	for i, r := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(r)
	}
	return result
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
