// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "capabilities", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "inactive", "busy"}, Default: "active"},
		{Name: "last_seen", Type: field.TypeTime},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_status_last_seen",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[3], AgentsColumns[4]},
			},
		},
	}
	// AuditEntriesColumns holds the columns for the "audit_entries" table.
	AuditEntriesColumns = []*schema.Column{
		{Name: "audit_id", Type: field.TypeString, Unique: true},
		{Name: "source", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "agent", Type: field.TypeString, Nullable: true},
		{Name: "target", Type: field.TypeString, Nullable: true},
		{Name: "risk_level", Type: field.TypeString, Nullable: true},
		{Name: "outcome", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditEntriesTable holds the schema information for the "audit_entries" table.
	AuditEntriesTable = &schema.Table{
		Name:       "audit_entries",
		Columns:    AuditEntriesColumns,
		PrimaryKey: []*schema.Column{AuditEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditentry_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[9]},
			},
			{
				Name:    "auditentry_source",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[1]},
			},
			{
				Name:    "auditentry_agent",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[3]},
			},
		},
	}
	// ConductorLogsColumns holds the columns for the "conductor_logs" table.
	ConductorLogsColumns = []*schema.Column{
		{Name: "log_id", Type: field.TypeString, Unique: true},
		{Name: "work_order_id", Type: field.TypeString},
		{Name: "mission_id", Type: field.TypeString, Nullable: true},
		{Name: "conductor_agent", Type: field.TypeString},
		{Name: "delegation_target", Type: field.TypeString},
		{Name: "reasoning", Type: field.TypeString, Size: 2147483647},
		{Name: "injected_context", Type: field.TypeJSON, Nullable: true},
		{Name: "decision_factors", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "outcome", Type: field.TypeEnum, Nullable: true, Enums: []string{"success", "failure", "partial"}},
		{Name: "outcome_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "outcome_at", Type: field.TypeTime, Nullable: true},
	}
	// ConductorLogsTable holds the schema information for the "conductor_logs" table.
	ConductorLogsTable = &schema.Table{
		Name:       "conductor_logs",
		Columns:    ConductorLogsColumns,
		PrimaryKey: []*schema.Column{ConductorLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conductorlog_work_order_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConductorLogsColumns[1], ConductorLogsColumns[11]},
			},
			{
				Name:    "conductorlog_conductor_agent_delegation_target",
				Unique:  false,
				Columns: []*schema.Column{ConductorLogsColumns[3], ConductorLogsColumns[4]},
			},
		},
	}
	// ConversationMessagesColumns holds the columns for the "conversation_messages" table.
	ConversationMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant", "system"}},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "tools_used", Type: field.TypeJSON, Nullable: true},
		{Name: "message_type", Type: field.TypeString, Nullable: true},
		{Name: "subtype", Type: field.TypeString, Nullable: true},
		{Name: "embedding", Type: field.TypeOther, Nullable: true, SchemaType: map[string]string{"postgres": "vector(1536)"}},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// ConversationMessagesTable holds the schema information for the "conversation_messages" table.
	ConversationMessagesTable = &schema.Table{
		Name:       "conversation_messages",
		Columns:    ConversationMessagesColumns,
		PrimaryKey: []*schema.Column{ConversationMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversation_messages_sessions_messages",
				Columns:    []*schema.Column{ConversationMessagesColumns[9]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conversationmessage_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationMessagesColumns[9], ConversationMessagesColumns[8]},
			},
			{
				Name:    "conversationmessage_role",
				Unique:  false,
				Columns: []*schema.Column{ConversationMessagesColumns[1]},
			},
		},
	}
	// CouncilDecisionsColumns holds the columns for the "council_decisions" table.
	CouncilDecisionsColumns = []*schema.Column{
		{Name: "decision_id", Type: field.TypeString, Unique: true},
		{Name: "work_order_id", Type: field.TypeString},
		{Name: "risk_level", Type: field.TypeEnum, Enums: []string{"LOW", "MED", "HIGH", "DESTRUCTIVE"}},
		{Name: "decision", Type: field.TypeEnum, Enums: []string{"approved", "pending_human", "blocked"}},
		{Name: "decided_by", Type: field.TypeEnum, Enums: []string{"auto", "human"}, Default: "auto"},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
	}
	// CouncilDecisionsTable holds the schema information for the "council_decisions" table.
	CouncilDecisionsTable = &schema.Table{
		Name:       "council_decisions",
		Columns:    CouncilDecisionsColumns,
		PrimaryKey: []*schema.Column{CouncilDecisionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "councildecision_work_order_id",
				Unique:  false,
				Columns: []*schema.Column{CouncilDecisionsColumns[1]},
			},
			{
				Name:    "councildecision_decision_created_at",
				Unique:  false,
				Columns: []*schema.Column{CouncilDecisionsColumns[3], CouncilDecisionsColumns[6]},
			},
		},
	}
	// HandoffsColumns holds the columns for the "handoffs" table.
	HandoffsColumns = []*schema.Column{
		{Name: "handoff_id", Type: field.TypeString, Unique: true},
		{Name: "from_agent", Type: field.TypeString},
		{Name: "to_agent", Type: field.TypeString},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "accepted", "completed", "rejected"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "accepted_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// HandoffsTable holds the schema information for the "handoffs" table.
	HandoffsTable = &schema.Table{
		Name:       "handoffs",
		Columns:    HandoffsColumns,
		PrimaryKey: []*schema.Column{HandoffsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "handoffs_sessions_handoffs",
				Columns:    []*schema.Column{HandoffsColumns[10]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "handoff_to_agent_status",
				Unique:  false,
				Columns: []*schema.Column{HandoffsColumns[2], HandoffsColumns[5]},
			},
			{
				Name:    "handoff_session_id",
				Unique:  false,
				Columns: []*schema.Column{HandoffsColumns[10]},
			},
			{
				Name:    "handoff_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{HandoffsColumns[5], HandoffsColumns[6]},
			},
		},
	}
	// PatternsColumns holds the columns for the "patterns" table.
	PatternsColumns = []*schema.Column{
		{Name: "pattern_id", Type: field.TypeString, Unique: true},
		{Name: "pattern_type", Type: field.TypeEnum, Enums: []string{"success", "failure", "technical", "process"}},
		{Name: "domain", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "action", Type: field.TypeString, Size: 2147483647},
		{Name: "outcome", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "embedding", Type: field.TypeOther, Nullable: true, SchemaType: map[string]string{"postgres": "vector(1536)"}},
		{Name: "created_by", Type: field.TypeString, Default: "system"},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PatternsTable holds the schema information for the "patterns" table.
	PatternsTable = &schema.Table{
		Name:       "patterns",
		Columns:    PatternsColumns,
		PrimaryKey: []*schema.Column{PatternsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pattern_pattern_type",
				Unique:  false,
				Columns: []*schema.Column{PatternsColumns[1]},
			},
			{
				Name:    "pattern_domain",
				Unique:  false,
				Columns: []*schema.Column{PatternsColumns[2]},
			},
			{
				Name:    "pattern_created_at",
				Unique:  false,
				Columns: []*schema.Column{PatternsColumns[10]},
			},
		},
	}
	// PatternObservationsColumns holds the columns for the "pattern_observations" table.
	PatternObservationsColumns = []*schema.Column{
		{Name: "observation_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "success_rating", Type: field.TypeInt, Nullable: true},
		{Name: "feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "observed_at", Type: field.TypeTime},
		{Name: "pattern_id", Type: field.TypeString},
	}
	// PatternObservationsTable holds the schema information for the "pattern_observations" table.
	PatternObservationsTable = &schema.Table{
		Name:       "pattern_observations",
		Columns:    PatternObservationsColumns,
		PrimaryKey: []*schema.Column{PatternObservationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pattern_observations_patterns_observations",
				Columns:    []*schema.Column{PatternObservationsColumns[5]},
				RefColumns: []*schema.Column{PatternsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patternobservation_pattern_id_observed_at",
				Unique:  false,
				Columns: []*schema.Column{PatternObservationsColumns[5], PatternObservationsColumns[4]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "docs", Type: field.TypeJSON, Nullable: true},
		{Name: "archived", Type: field.TypeBool, Default: false},
		{Name: "archived_at", Type: field.TypeTime, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_archived",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[4]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "embedding", Type: field.TypeOther, Nullable: true, SchemaType: map[string]string{"postgres": "vector(1536)"}},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_agent_name_started_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1], SessionsColumns[3]},
			},
			{
				Name:    "session_project_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[2]},
			},
			{
				Name:    "session_started_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[3]},
			},
			{
				Name:    "session_ended_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[4]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "seq", Type: field.TypeInt64, Nullable: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "embedding", Type: field.TypeOther, Nullable: true, SchemaType: map[string]string{"postgres": "vector(1536)"}},
		{Name: "session_id", Type: field.TypeString},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "session_events_sessions_events",
				Columns:    []*schema.Column{SessionEventsColumns[6]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_session_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[6], SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
		},
	}
	// SharedContextsColumns holds the columns for the "shared_contexts" table.
	SharedContextsColumns = []*schema.Column{
		{Name: "context_id", Type: field.TypeString, Unique: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeJSON},
		{Name: "set_by", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SharedContextsTable holds the schema information for the "shared_contexts" table.
	SharedContextsTable = &schema.Table{
		Name:       "shared_contexts",
		Columns:    SharedContextsColumns,
		PrimaryKey: []*schema.Column{SharedContextsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sharedcontext_updated_at",
				Unique:  false,
				Columns: []*schema.Column{SharedContextsColumns[6]},
			},
		},
	}
	// SharedContextHistoriesColumns holds the columns for the "shared_context_histories" table.
	SharedContextHistoriesColumns = []*schema.Column{
		{Name: "history_id", Type: field.TypeString, Unique: true},
		{Name: "key", Type: field.TypeString},
		{Name: "old_value", Type: field.TypeJSON, Nullable: true},
		{Name: "new_value", Type: field.TypeJSON},
		{Name: "changed_by", Type: field.TypeString},
		{Name: "changed_at", Type: field.TypeTime},
	}
	// SharedContextHistoriesTable holds the schema information for the "shared_context_histories" table.
	SharedContextHistoriesTable = &schema.Table{
		Name:       "shared_context_histories",
		Columns:    SharedContextHistoriesColumns,
		PrimaryKey: []*schema.Column{SharedContextHistoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sharedcontexthistory_key_changed_at",
				Unique:  false,
				Columns: []*schema.Column{SharedContextHistoriesColumns[1], SharedContextHistoriesColumns[5]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"todo", "doing", "review", "done"}, Default: "todo"},
		{Name: "assignee", Type: field.TypeString, Nullable: true},
		{Name: "task_order", Type: field.TypeInt, Default: 0},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "medium"},
		{Name: "feature", Type: field.TypeString, Nullable: true},
		{Name: "archived", Type: field.TypeBool, Default: false},
		{Name: "archived_at", Type: field.TypeTime, Nullable: true},
		{Name: "archived_by", Type: field.TypeString, Nullable: true},
		{Name: "archive_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_projects_tasks",
				Columns:    []*schema.Column{TasksColumns[15]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_project_id_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[15], TasksColumns[3]},
			},
			{
				Name:    "task_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[3], TasksColumns[14]},
			},
			{
				Name:    "task_archived",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		AuditEntriesTable,
		ConductorLogsTable,
		ConversationMessagesTable,
		CouncilDecisionsTable,
		HandoffsTable,
		PatternsTable,
		PatternObservationsTable,
		ProjectsTable,
		SessionsTable,
		SessionEventsTable,
		SharedContextsTable,
		SharedContextHistoriesTable,
		TasksTable,
	}
)

func init() {
	ConversationMessagesTable.ForeignKeys[0].RefTable = SessionsTable
	HandoffsTable.ForeignKeys[0].RefTable = SessionsTable
	PatternObservationsTable.ForeignKeys[0].RefTable = PatternsTable
	SessionEventsTable.ForeignKeys[0].RefTable = SessionsTable
	TasksTable.ForeignKeys[0].RefTable = ProjectsTable
}
