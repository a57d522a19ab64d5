// internal/importer/mapper.go
package importer

import (
	"strconv"
	"strings"
)

// aliases maps one canonical field to every header spelling a sheet may use
// for it, in priority order: when a sheet carries several alias columns for
// one field, the earliest alias wins. Matching is case-insensitive so `day`
// and `Day` are the same column; Korean headers compare exactly.
type aliases []string

func (a aliases) get(row Row) (string, bool) {
	for _, alias := range a {
		for header, value := range row.Cells {
			if strings.EqualFold(header, alias) {
				trimmed := strings.TrimSpace(value)
				if trimmed != "" {
					return trimmed, true
				}
			}
		}
	}
	return "", false
}

// intOf coerces the field to an integer. A present but unparsable value
// reports ok=false, which callers treat as "field absent": omitted when
// optional, row skipped when required. Never NaN, never zero-defaulted.
func (a aliases) intOf(row Row) (int, bool) {
	value, ok := a.get(row)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return n, true
}

// difficultyLabels is the fixed two-entry mapping from the sheet labels to
// backend values. Unrecognized labels are dropped, not defaulted.
var difficultyLabels = map[string]string{
	"기본": "basic",
	"심화": "advanced",
}

func mapDifficulty(label string) (string, bool) {
	mapped, ok := difficultyLabels[strings.TrimSpace(label)]
	return mapped, ok
}

// Header alias tables per import type.
var (
	progressNameAliases       = aliases{"진도", "진도명", "name", "progress"}
	progressDayAliases        = aliases{"day"}
	progressDifficultyAliases = aliases{"난이도", "difficulty"}
	progressSubjectAliases    = aliases{"과목명", "subject"}
	progressSequenceAliases   = aliases{"순서", "sequence"}

	problemSubjectAliases  = aliases{"subject", "과목", "과목명"}
	problemProgressAliases = aliases{"progress", "진도", "진도명"}
	problemContentAliases  = aliases{"problem", "문제"}
	problemAnswerAliases   = aliases{"answer", "정답"}
	problemExamYearAliases = aliases{"exam_year", "출제년도"}
	problemSequenceAliases = aliases{"sequence", "순서"}

	memoDeckAliases  = aliases{"진도", "암기진도", "name", "progress"}
	memoFrontAliases = aliases{"front", "앞면"}
	memoBackAliases  = aliases{"back", "뒷면"}
	memoSeqAliases   = aliases{"sequence", "순서"}
)

// choiceAliases returns the alias set for the n-th choice column (1..5).
func choiceAliases(n int) aliases {
	num := strconv.Itoa(n)
	return aliases{"choice" + num, "보기" + num}
}
