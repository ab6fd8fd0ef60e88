// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/sergeville/Archon/ent/agent"
	"github.com/sergeville/Archon/ent/auditentry"
	"github.com/sergeville/Archon/ent/conductorlog"
	"github.com/sergeville/Archon/ent/conversationmessage"
	"github.com/sergeville/Archon/ent/councildecision"
	"github.com/sergeville/Archon/ent/handoff"
	"github.com/sergeville/Archon/ent/pattern"
	"github.com/sergeville/Archon/ent/patternobservation"
	"github.com/sergeville/Archon/ent/project"
	"github.com/sergeville/Archon/ent/schema"
	"github.com/sergeville/Archon/ent/session"
	"github.com/sergeville/Archon/ent/sessionevent"
	"github.com/sergeville/Archon/ent/sharedcontext"
	"github.com/sergeville/Archon/ent/sharedcontexthistory"
	"github.com/sergeville/Archon/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescName is the schema descriptor for name field.
	agentDescName := agentFields[1].Descriptor()
	// agent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	agent.NameValidator = agentDescName.Validators[0].(func(string) error)
	// agentDescLastSeen is the schema descriptor for last_seen field.
	agentDescLastSeen := agentFields[4].Descriptor()
	// agent.DefaultLastSeen holds the default value on creation for the last_seen field.
	agent.DefaultLastSeen = agentDescLastSeen.Default.(func() time.Time)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[6].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	auditentryFields := schema.AuditEntry{}.Fields()
	_ = auditentryFields
	// auditentryDescSource is the schema descriptor for source field.
	auditentryDescSource := auditentryFields[1].Descriptor()
	// auditentry.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	auditentry.SourceValidator = auditentryDescSource.Validators[0].(func(string) error)
	// auditentryDescAction is the schema descriptor for action field.
	auditentryDescAction := auditentryFields[2].Descriptor()
	// auditentry.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditentry.ActionValidator = auditentryDescAction.Validators[0].(func(string) error)
	// auditentryDescCreatedAt is the schema descriptor for created_at field.
	auditentryDescCreatedAt := auditentryFields[9].Descriptor()
	// auditentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditentry.DefaultCreatedAt = auditentryDescCreatedAt.Default.(func() time.Time)
	conductorlogFields := schema.ConductorLog{}.Fields()
	_ = conductorlogFields
	// conductorlogDescWorkOrderID is the schema descriptor for work_order_id field.
	conductorlogDescWorkOrderID := conductorlogFields[1].Descriptor()
	// conductorlog.WorkOrderIDValidator is a validator for the "work_order_id" field. It is called by the builders before save.
	conductorlog.WorkOrderIDValidator = conductorlogDescWorkOrderID.Validators[0].(func(string) error)
	// conductorlogDescConductorAgent is the schema descriptor for conductor_agent field.
	conductorlogDescConductorAgent := conductorlogFields[3].Descriptor()
	// conductorlog.ConductorAgentValidator is a validator for the "conductor_agent" field. It is called by the builders before save.
	conductorlog.ConductorAgentValidator = conductorlogDescConductorAgent.Validators[0].(func(string) error)
	// conductorlogDescDelegationTarget is the schema descriptor for delegation_target field.
	conductorlogDescDelegationTarget := conductorlogFields[4].Descriptor()
	// conductorlog.DelegationTargetValidator is a validator for the "delegation_target" field. It is called by the builders before save.
	conductorlog.DelegationTargetValidator = conductorlogDescDelegationTarget.Validators[0].(func(string) error)
	// conductorlogDescCreatedAt is the schema descriptor for created_at field.
	conductorlogDescCreatedAt := conductorlogFields[11].Descriptor()
	// conductorlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	conductorlog.DefaultCreatedAt = conductorlogDescCreatedAt.Default.(func() time.Time)
	conversationmessageFields := schema.ConversationMessage{}.Fields()
	_ = conversationmessageFields
	// conversationmessageDescCreatedAt is the schema descriptor for created_at field.
	conversationmessageDescCreatedAt := conversationmessageFields[9].Descriptor()
	// conversationmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversationmessage.DefaultCreatedAt = conversationmessageDescCreatedAt.Default.(func() time.Time)
	councildecisionFields := schema.CouncilDecision{}.Fields()
	_ = councildecisionFields
	// councildecisionDescWorkOrderID is the schema descriptor for work_order_id field.
	councildecisionDescWorkOrderID := councildecisionFields[1].Descriptor()
	// councildecision.WorkOrderIDValidator is a validator for the "work_order_id" field. It is called by the builders before save.
	councildecision.WorkOrderIDValidator = councildecisionDescWorkOrderID.Validators[0].(func(string) error)
	// councildecisionDescCreatedAt is the schema descriptor for created_at field.
	councildecisionDescCreatedAt := councildecisionFields[6].Descriptor()
	// councildecision.DefaultCreatedAt holds the default value on creation for the created_at field.
	councildecision.DefaultCreatedAt = councildecisionDescCreatedAt.Default.(func() time.Time)
	handoffFields := schema.Handoff{}.Fields()
	_ = handoffFields
	// handoffDescFromAgent is the schema descriptor for from_agent field.
	handoffDescFromAgent := handoffFields[2].Descriptor()
	// handoff.FromAgentValidator is a validator for the "from_agent" field. It is called by the builders before save.
	handoff.FromAgentValidator = handoffDescFromAgent.Validators[0].(func(string) error)
	// handoffDescToAgent is the schema descriptor for to_agent field.
	handoffDescToAgent := handoffFields[3].Descriptor()
	// handoff.ToAgentValidator is a validator for the "to_agent" field. It is called by the builders before save.
	handoff.ToAgentValidator = handoffDescToAgent.Validators[0].(func(string) error)
	// handoffDescCreatedAt is the schema descriptor for created_at field.
	handoffDescCreatedAt := handoffFields[7].Descriptor()
	// handoff.DefaultCreatedAt holds the default value on creation for the created_at field.
	handoff.DefaultCreatedAt = handoffDescCreatedAt.Default.(func() time.Time)
	patternFields := schema.Pattern{}.Fields()
	_ = patternFields
	// patternDescDomain is the schema descriptor for domain field.
	patternDescDomain := patternFields[2].Descriptor()
	// pattern.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	pattern.DomainValidator = patternDescDomain.Validators[0].(func(string) error)
	// patternDescCreatedBy is the schema descriptor for created_by field.
	patternDescCreatedBy := patternFields[8].Descriptor()
	// pattern.DefaultCreatedBy holds the default value on creation for the created_by field.
	pattern.DefaultCreatedBy = patternDescCreatedBy.Default.(string)
	// patternDescCreatedAt is the schema descriptor for created_at field.
	patternDescCreatedAt := patternFields[10].Descriptor()
	// pattern.DefaultCreatedAt holds the default value on creation for the created_at field.
	pattern.DefaultCreatedAt = patternDescCreatedAt.Default.(func() time.Time)
	patternobservationFields := schema.PatternObservation{}.Fields()
	_ = patternobservationFields
	// patternobservationDescSuccessRating is the schema descriptor for success_rating field.
	patternobservationDescSuccessRating := patternobservationFields[3].Descriptor()
	// patternobservation.SuccessRatingValidator is a validator for the "success_rating" field. It is called by the builders before save.
	patternobservation.SuccessRatingValidator = patternobservationDescSuccessRating.Validators[0].(func(int) error)
	// patternobservationDescObservedAt is the schema descriptor for observed_at field.
	patternobservationDescObservedAt := patternobservationFields[5].Descriptor()
	// patternobservation.DefaultObservedAt holds the default value on creation for the observed_at field.
	patternobservation.DefaultObservedAt = patternobservationDescObservedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescTitle is the schema descriptor for title field.
	projectDescTitle := projectFields[1].Descriptor()
	// project.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	project.TitleValidator = projectDescTitle.Validators[0].(func(string) error)
	// projectDescArchived is the schema descriptor for archived field.
	projectDescArchived := projectFields[4].Descriptor()
	// project.DefaultArchived holds the default value on creation for the archived field.
	project.DefaultArchived = projectDescArchived.Default.(bool)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[7].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[8].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescAgentName is the schema descriptor for agent_name field.
	sessionDescAgentName := sessionFields[1].Descriptor()
	// session.AgentNameValidator is a validator for the "agent_name" field. It is called by the builders before save.
	session.AgentNameValidator = sessionDescAgentName.Validators[0].(func(string) error)
	// sessionDescStartedAt is the schema descriptor for started_at field.
	sessionDescStartedAt := sessionFields[3].Descriptor()
	// session.DefaultStartedAt holds the default value on creation for the started_at field.
	session.DefaultStartedAt = sessionDescStartedAt.Default.(func() time.Time)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[9].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescEventType is the schema descriptor for event_type field.
	sessioneventDescEventType := sessioneventFields[3].Descriptor()
	// sessionevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	sessionevent.EventTypeValidator = sessioneventDescEventType.Validators[0].(func(string) error)
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	sharedcontextFields := schema.SharedContext{}.Fields()
	_ = sharedcontextFields
	// sharedcontextDescKey is the schema descriptor for key field.
	sharedcontextDescKey := sharedcontextFields[1].Descriptor()
	// sharedcontext.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	sharedcontext.KeyValidator = sharedcontextDescKey.Validators[0].(func(string) error)
	// sharedcontextDescSetBy is the schema descriptor for set_by field.
	sharedcontextDescSetBy := sharedcontextFields[3].Descriptor()
	// sharedcontext.SetByValidator is a validator for the "set_by" field. It is called by the builders before save.
	sharedcontext.SetByValidator = sharedcontextDescSetBy.Validators[0].(func(string) error)
	// sharedcontextDescUpdatedAt is the schema descriptor for updated_at field.
	sharedcontextDescUpdatedAt := sharedcontextFields[6].Descriptor()
	// sharedcontext.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sharedcontext.DefaultUpdatedAt = sharedcontextDescUpdatedAt.Default.(func() time.Time)
	// sharedcontext.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sharedcontext.UpdateDefaultUpdatedAt = sharedcontextDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sharedcontextDescCreatedAt is the schema descriptor for created_at field.
	sharedcontextDescCreatedAt := sharedcontextFields[7].Descriptor()
	// sharedcontext.DefaultCreatedAt holds the default value on creation for the created_at field.
	sharedcontext.DefaultCreatedAt = sharedcontextDescCreatedAt.Default.(func() time.Time)
	sharedcontexthistoryFields := schema.SharedContextHistory{}.Fields()
	_ = sharedcontexthistoryFields
	// sharedcontexthistoryDescKey is the schema descriptor for key field.
	sharedcontexthistoryDescKey := sharedcontexthistoryFields[1].Descriptor()
	// sharedcontexthistory.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	sharedcontexthistory.KeyValidator = sharedcontexthistoryDescKey.Validators[0].(func(string) error)
	// sharedcontexthistoryDescChangedBy is the schema descriptor for changed_by field.
	sharedcontexthistoryDescChangedBy := sharedcontexthistoryFields[4].Descriptor()
	// sharedcontexthistory.ChangedByValidator is a validator for the "changed_by" field. It is called by the builders before save.
	sharedcontexthistory.ChangedByValidator = sharedcontexthistoryDescChangedBy.Validators[0].(func(string) error)
	// sharedcontexthistoryDescChangedAt is the schema descriptor for changed_at field.
	sharedcontexthistoryDescChangedAt := sharedcontexthistoryFields[5].Descriptor()
	// sharedcontexthistory.DefaultChangedAt holds the default value on creation for the changed_at field.
	sharedcontexthistory.DefaultChangedAt = sharedcontexthistoryDescChangedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescTitle is the schema descriptor for title field.
	taskDescTitle := taskFields[2].Descriptor()
	// task.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	task.TitleValidator = taskDescTitle.Validators[0].(func(string) error)
	// taskDescTaskOrder is the schema descriptor for task_order field.
	taskDescTaskOrder := taskFields[6].Descriptor()
	// task.DefaultTaskOrder holds the default value on creation for the task_order field.
	task.DefaultTaskOrder = taskDescTaskOrder.Default.(int)
	// taskDescArchived is the schema descriptor for archived field.
	taskDescArchived := taskFields[9].Descriptor()
	// task.DefaultArchived holds the default value on creation for the archived field.
	task.DefaultArchived = taskDescArchived.Default.(bool)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[14].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[15].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
}
