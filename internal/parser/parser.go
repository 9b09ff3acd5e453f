package parser

import "gtr/internal/domain"

// Parser turns failed results into failure records
type Parser interface {
	ParseFailure(result domain.TestResult) []domain.TestFailure
}
