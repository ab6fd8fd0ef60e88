// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// AuditEntry is the predicate function for auditentry builders.
type AuditEntry func(*sql.Selector)

// ConductorLog is the predicate function for conductorlog builders.
type ConductorLog func(*sql.Selector)

// ConversationMessage is the predicate function for conversationmessage builders.
type ConversationMessage func(*sql.Selector)

// CouncilDecision is the predicate function for councildecision builders.
type CouncilDecision func(*sql.Selector)

// Handoff is the predicate function for handoff builders.
type Handoff func(*sql.Selector)

// Pattern is the predicate function for pattern builders.
type Pattern func(*sql.Selector)

// PatternObservation is the predicate function for patternobservation builders.
type PatternObservation func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// SharedContext is the predicate function for sharedcontext builders.
type SharedContext func(*sql.Selector)

// SharedContextHistory is the predicate function for sharedcontexthistory builders.
type SharedContextHistory func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)
