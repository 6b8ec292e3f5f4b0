// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CostDaily is the predicate function for costdaily builders.
type CostDaily func(*sql.Selector)

// Gear is the predicate function for gear builders.
type Gear func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// LLMCall is the predicate function for llmcall builders.
type LLMCall func(*sql.Selector)

// StandingRule is the predicate function for standingrule builders.
type StandingRule func(*sql.Selector)
