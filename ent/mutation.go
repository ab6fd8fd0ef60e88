// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	pgvector "github.com/pgvector/pgvector-go"
	"github.com/sergeville/Archon/ent/agent"
	"github.com/sergeville/Archon/ent/auditentry"
	"github.com/sergeville/Archon/ent/conductorlog"
	"github.com/sergeville/Archon/ent/conversationmessage"
	"github.com/sergeville/Archon/ent/councildecision"
	"github.com/sergeville/Archon/ent/handoff"
	"github.com/sergeville/Archon/ent/pattern"
	"github.com/sergeville/Archon/ent/patternobservation"
	"github.com/sergeville/Archon/ent/predicate"
	"github.com/sergeville/Archon/ent/project"
	"github.com/sergeville/Archon/ent/session"
	"github.com/sergeville/Archon/ent/sessionevent"
	"github.com/sergeville/Archon/ent/sharedcontext"
	"github.com/sergeville/Archon/ent/sharedcontexthistory"
	"github.com/sergeville/Archon/ent/task"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent                = "Agent"
	TypeAuditEntry           = "AuditEntry"
	TypeConductorLog         = "ConductorLog"
	TypeConversationMessage  = "ConversationMessage"
	TypeCouncilDecision      = "CouncilDecision"
	TypeHandoff              = "Handoff"
	TypePattern              = "Pattern"
	TypePatternObservation   = "PatternObservation"
	TypeProject              = "Project"
	TypeSession              = "Session"
	TypeSessionEvent         = "SessionEvent"
	TypeSharedContext        = "SharedContext"
	TypeSharedContextHistory = "SharedContextHistory"
	TypeTask                 = "Task"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	name               *string
	capabilities       *[]string
	appendcapabilities []string
	status             *agent.Status
	last_seen          *time.Time
	metadata           *map[string]interface{}
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Agent, error)
	predicates         []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *AgentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentMutation) ResetName() {
	m.name = nil
}

// SetCapabilities sets the "capabilities" field.
func (m *AgentMutation) SetCapabilities(s []string) {
	m.capabilities = &s
	m.appendcapabilities = nil
}

// Capabilities returns the value of the "capabilities" field in the mutation.
func (m *AgentMutation) Capabilities() (r []string, exists bool) {
	v := m.capabilities
	if v == nil {
		return
	}
	return *v, true
}

// OldCapabilities returns the old "capabilities" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCapabilities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapabilities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapabilities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapabilities: %w", err)
	}
	return oldValue.Capabilities, nil
}

// AppendCapabilities adds s to the "capabilities" field.
func (m *AgentMutation) AppendCapabilities(s []string) {
	m.appendcapabilities = append(m.appendcapabilities, s...)
}

// AppendedCapabilities returns the list of values that were appended to the "capabilities" field in this mutation.
func (m *AgentMutation) AppendedCapabilities() ([]string, bool) {
	if len(m.appendcapabilities) == 0 {
		return nil, false
	}
	return m.appendcapabilities, true
}

// ClearCapabilities clears the value of the "capabilities" field.
func (m *AgentMutation) ClearCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	m.clearedFields[agent.FieldCapabilities] = struct{}{}
}

// CapabilitiesCleared returns if the "capabilities" field was cleared in this mutation.
func (m *AgentMutation) CapabilitiesCleared() bool {
	_, ok := m.clearedFields[agent.FieldCapabilities]
	return ok
}

// ResetCapabilities resets all changes to the "capabilities" field.
func (m *AgentMutation) ResetCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	delete(m.clearedFields, agent.FieldCapabilities)
}

// SetStatus sets the "status" field.
func (m *AgentMutation) SetStatus(a agent.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentMutation) Status() (r agent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldStatus(ctx context.Context) (v agent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentMutation) ResetStatus() {
	m.status = nil
}

// SetLastSeen sets the "last_seen" field.
func (m *AgentMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *AgentMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldLastSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *AgentMutation) ResetLastSeen() {
	m.last_seen = nil
}

// SetMetadata sets the "metadata" field.
func (m *AgentMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *AgentMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *AgentMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[agent.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *AgentMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[agent.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *AgentMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, agent.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, agent.FieldName)
	}
	if m.capabilities != nil {
		fields = append(fields, agent.FieldCapabilities)
	}
	if m.status != nil {
		fields = append(fields, agent.FieldStatus)
	}
	if m.last_seen != nil {
		fields = append(fields, agent.FieldLastSeen)
	}
	if m.metadata != nil {
		fields = append(fields, agent.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldName:
		return m.Name()
	case agent.FieldCapabilities:
		return m.Capabilities()
	case agent.FieldStatus:
		return m.Status()
	case agent.FieldLastSeen:
		return m.LastSeen()
	case agent.FieldMetadata:
		return m.Metadata()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldName:
		return m.OldName(ctx)
	case agent.FieldCapabilities:
		return m.OldCapabilities(ctx)
	case agent.FieldStatus:
		return m.OldStatus(ctx)
	case agent.FieldLastSeen:
		return m.OldLastSeen(ctx)
	case agent.FieldMetadata:
		return m.OldMetadata(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agent.FieldCapabilities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapabilities(v)
		return nil
	case agent.FieldStatus:
		v, ok := value.(agent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agent.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	case agent.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldCapabilities) {
		fields = append(fields, agent.FieldCapabilities)
	}
	if m.FieldCleared(agent.FieldMetadata) {
		fields = append(fields, agent.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldCapabilities:
		m.ClearCapabilities()
		return nil
	case agent.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldName:
		m.ResetName()
		return nil
	case agent.FieldCapabilities:
		m.ResetCapabilities()
		return nil
	case agent.FieldStatus:
		m.ResetStatus()
		return nil
	case agent.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	case agent.FieldMetadata:
		m.ResetMetadata()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Agent edge %s", name)
}

// AuditEntryMutation represents an operation that mutates the AuditEntry nodes in the graph.
type AuditEntryMutation struct {
	config
	op            Op
	typ           string
	id            *string
	source        *string
	action        *string
	agent         *string
	target        *string
	risk_level    *string
	outcome       *string
	metadata      *map[string]interface{}
	session_id    *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditEntry, error)
	predicates    []predicate.AuditEntry
}

var _ ent.Mutation = (*AuditEntryMutation)(nil)

// auditentryOption allows management of the mutation configuration using functional options.
type auditentryOption func(*AuditEntryMutation)

// newAuditEntryMutation creates new mutation for the AuditEntry entity.
func newAuditEntryMutation(c config, op Op, opts ...auditentryOption) *AuditEntryMutation {
	m := &AuditEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditEntryID sets the ID field of the mutation.
func withAuditEntryID(id string) auditentryOption {
	return func(m *AuditEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditEntry
		)
		m.oldValue = func(ctx context.Context) (*AuditEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditEntry sets the old AuditEntry of the mutation.
func withAuditEntry(node *AuditEntry) auditentryOption {
	return func(m *AuditEntryMutation) {
		m.oldValue = func(context.Context) (*AuditEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditEntry entities.
func (m *AuditEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSource sets the "source" field.
func (m *AuditEntryMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *AuditEntryMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *AuditEntryMutation) ResetSource() {
	m.source = nil
}

// SetAction sets the "action" field.
func (m *AuditEntryMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditEntryMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditEntryMutation) ResetAction() {
	m.action = nil
}

// SetAgent sets the "agent" field.
func (m *AuditEntryMutation) SetAgent(s string) {
	m.agent = &s
}

// Agent returns the value of the "agent" field in the mutation.
func (m *AuditEntryMutation) Agent() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgent returns the old "agent" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldAgent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgent: %w", err)
	}
	return oldValue.Agent, nil
}

// ClearAgent clears the value of the "agent" field.
func (m *AuditEntryMutation) ClearAgent() {
	m.agent = nil
	m.clearedFields[auditentry.FieldAgent] = struct{}{}
}

// AgentCleared returns if the "agent" field was cleared in this mutation.
func (m *AuditEntryMutation) AgentCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldAgent]
	return ok
}

// ResetAgent resets all changes to the "agent" field.
func (m *AuditEntryMutation) ResetAgent() {
	m.agent = nil
	delete(m.clearedFields, auditentry.FieldAgent)
}

// SetTarget sets the "target" field.
func (m *AuditEntryMutation) SetTarget(s string) {
	m.target = &s
}

// Target returns the value of the "target" field in the mutation.
func (m *AuditEntryMutation) Target() (r string, exists bool) {
	v := m.target
	if v == nil {
		return
	}
	return *v, true
}

// OldTarget returns the old "target" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldTarget(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTarget: %w", err)
	}
	return oldValue.Target, nil
}

// ClearTarget clears the value of the "target" field.
func (m *AuditEntryMutation) ClearTarget() {
	m.target = nil
	m.clearedFields[auditentry.FieldTarget] = struct{}{}
}

// TargetCleared returns if the "target" field was cleared in this mutation.
func (m *AuditEntryMutation) TargetCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldTarget]
	return ok
}

// ResetTarget resets all changes to the "target" field.
func (m *AuditEntryMutation) ResetTarget() {
	m.target = nil
	delete(m.clearedFields, auditentry.FieldTarget)
}

// SetRiskLevel sets the "risk_level" field.
func (m *AuditEntryMutation) SetRiskLevel(s string) {
	m.risk_level = &s
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *AuditEntryMutation) RiskLevel() (r string, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldRiskLevel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ClearRiskLevel clears the value of the "risk_level" field.
func (m *AuditEntryMutation) ClearRiskLevel() {
	m.risk_level = nil
	m.clearedFields[auditentry.FieldRiskLevel] = struct{}{}
}

// RiskLevelCleared returns if the "risk_level" field was cleared in this mutation.
func (m *AuditEntryMutation) RiskLevelCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldRiskLevel]
	return ok
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *AuditEntryMutation) ResetRiskLevel() {
	m.risk_level = nil
	delete(m.clearedFields, auditentry.FieldRiskLevel)
}

// SetOutcome sets the "outcome" field.
func (m *AuditEntryMutation) SetOutcome(s string) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *AuditEntryMutation) Outcome() (r string, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldOutcome(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ClearOutcome clears the value of the "outcome" field.
func (m *AuditEntryMutation) ClearOutcome() {
	m.outcome = nil
	m.clearedFields[auditentry.FieldOutcome] = struct{}{}
}

// OutcomeCleared returns if the "outcome" field was cleared in this mutation.
func (m *AuditEntryMutation) OutcomeCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldOutcome]
	return ok
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *AuditEntryMutation) ResetOutcome() {
	m.outcome = nil
	delete(m.clearedFields, auditentry.FieldOutcome)
}

// SetMetadata sets the "metadata" field.
func (m *AuditEntryMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *AuditEntryMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *AuditEntryMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[auditentry.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *AuditEntryMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *AuditEntryMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, auditentry.FieldMetadata)
}

// SetSessionID sets the "session_id" field.
func (m *AuditEntryMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AuditEntryMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *AuditEntryMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[auditentry.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *AuditEntryMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AuditEntryMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, auditentry.FieldSessionID)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AuditEntryMutation builder.
func (m *AuditEntryMutation) Where(ps ...predicate.AuditEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditEntry).
func (m *AuditEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditEntryMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.source != nil {
		fields = append(fields, auditentry.FieldSource)
	}
	if m.action != nil {
		fields = append(fields, auditentry.FieldAction)
	}
	if m.agent != nil {
		fields = append(fields, auditentry.FieldAgent)
	}
	if m.target != nil {
		fields = append(fields, auditentry.FieldTarget)
	}
	if m.risk_level != nil {
		fields = append(fields, auditentry.FieldRiskLevel)
	}
	if m.outcome != nil {
		fields = append(fields, auditentry.FieldOutcome)
	}
	if m.metadata != nil {
		fields = append(fields, auditentry.FieldMetadata)
	}
	if m.session_id != nil {
		fields = append(fields, auditentry.FieldSessionID)
	}
	if m.created_at != nil {
		fields = append(fields, auditentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditentry.FieldSource:
		return m.Source()
	case auditentry.FieldAction:
		return m.Action()
	case auditentry.FieldAgent:
		return m.Agent()
	case auditentry.FieldTarget:
		return m.Target()
	case auditentry.FieldRiskLevel:
		return m.RiskLevel()
	case auditentry.FieldOutcome:
		return m.Outcome()
	case auditentry.FieldMetadata:
		return m.Metadata()
	case auditentry.FieldSessionID:
		return m.SessionID()
	case auditentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditentry.FieldSource:
		return m.OldSource(ctx)
	case auditentry.FieldAction:
		return m.OldAction(ctx)
	case auditentry.FieldAgent:
		return m.OldAgent(ctx)
	case auditentry.FieldTarget:
		return m.OldTarget(ctx)
	case auditentry.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case auditentry.FieldOutcome:
		return m.OldOutcome(ctx)
	case auditentry.FieldMetadata:
		return m.OldMetadata(ctx)
	case auditentry.FieldSessionID:
		return m.OldSessionID(ctx)
	case auditentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditentry.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case auditentry.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditentry.FieldAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgent(v)
		return nil
	case auditentry.FieldTarget:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTarget(v)
		return nil
	case auditentry.FieldRiskLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case auditentry.FieldOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case auditentry.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case auditentry.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case auditentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditentry.FieldAgent) {
		fields = append(fields, auditentry.FieldAgent)
	}
	if m.FieldCleared(auditentry.FieldTarget) {
		fields = append(fields, auditentry.FieldTarget)
	}
	if m.FieldCleared(auditentry.FieldRiskLevel) {
		fields = append(fields, auditentry.FieldRiskLevel)
	}
	if m.FieldCleared(auditentry.FieldOutcome) {
		fields = append(fields, auditentry.FieldOutcome)
	}
	if m.FieldCleared(auditentry.FieldMetadata) {
		fields = append(fields, auditentry.FieldMetadata)
	}
	if m.FieldCleared(auditentry.FieldSessionID) {
		fields = append(fields, auditentry.FieldSessionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditEntryMutation) ClearField(name string) error {
	switch name {
	case auditentry.FieldAgent:
		m.ClearAgent()
		return nil
	case auditentry.FieldTarget:
		m.ClearTarget()
		return nil
	case auditentry.FieldRiskLevel:
		m.ClearRiskLevel()
		return nil
	case auditentry.FieldOutcome:
		m.ClearOutcome()
		return nil
	case auditentry.FieldMetadata:
		m.ClearMetadata()
		return nil
	case auditentry.FieldSessionID:
		m.ClearSessionID()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditEntryMutation) ResetField(name string) error {
	switch name {
	case auditentry.FieldSource:
		m.ResetSource()
		return nil
	case auditentry.FieldAction:
		m.ResetAction()
		return nil
	case auditentry.FieldAgent:
		m.ResetAgent()
		return nil
	case auditentry.FieldTarget:
		m.ResetTarget()
		return nil
	case auditentry.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case auditentry.FieldOutcome:
		m.ResetOutcome()
		return nil
	case auditentry.FieldMetadata:
		m.ResetMetadata()
		return nil
	case auditentry.FieldSessionID:
		m.ResetSessionID()
		return nil
	case auditentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditEntry edge %s", name)
}

// ConductorLogMutation represents an operation that mutates the ConductorLog nodes in the graph.
type ConductorLogMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	work_order_id          *string
	mission_id             *string
	conductor_agent        *string
	delegation_target      *string
	reasoning              *string
	injected_context       *map[string]interface{}
	decision_factors       *[]string
	appenddecision_factors []string
	confidence             *float64
	addconfidence          *float64
	outcome                *conductorlog.Outcome
	outcome_notes          *string
	created_at             *time.Time
	outcome_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*ConductorLog, error)
	predicates             []predicate.ConductorLog
}

var _ ent.Mutation = (*ConductorLogMutation)(nil)

// conductorlogOption allows management of the mutation configuration using functional options.
type conductorlogOption func(*ConductorLogMutation)

// newConductorLogMutation creates new mutation for the ConductorLog entity.
func newConductorLogMutation(c config, op Op, opts ...conductorlogOption) *ConductorLogMutation {
	m := &ConductorLogMutation{
		config:        c,
		op:            op,
		typ:           TypeConductorLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConductorLogID sets the ID field of the mutation.
func withConductorLogID(id string) conductorlogOption {
	return func(m *ConductorLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ConductorLog
		)
		m.oldValue = func(ctx context.Context) (*ConductorLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConductorLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConductorLog sets the old ConductorLog of the mutation.
func withConductorLog(node *ConductorLog) conductorlogOption {
	return func(m *ConductorLogMutation) {
		m.oldValue = func(context.Context) (*ConductorLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConductorLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConductorLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConductorLog entities.
func (m *ConductorLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConductorLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConductorLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConductorLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkOrderID sets the "work_order_id" field.
func (m *ConductorLogMutation) SetWorkOrderID(s string) {
	m.work_order_id = &s
}

// WorkOrderID returns the value of the "work_order_id" field in the mutation.
func (m *ConductorLogMutation) WorkOrderID() (r string, exists bool) {
	v := m.work_order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkOrderID returns the old "work_order_id" field's value of the ConductorLog entity.
// If the ConductorLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConductorLogMutation) OldWorkOrderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkOrderID: %w", err)
	}
	return oldValue.WorkOrderID, nil
}

// ResetWorkOrderID resets all changes to the "work_order_id" field.
func (m *ConductorLogMutation) ResetWorkOrderID() {
	m.work_order_id = nil
}

// SetMissionID sets the "mission_id" field.
func (m *ConductorLogMutation) SetMissionID(s string) {
	m.mission_id = &s
}

// MissionID returns the value of the "mission_id" field in the mutation.
func (m *ConductorLogMutation) MissionID() (r string, exists bool) {
	v := m.mission_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMissionID returns the old "mission_id" field's value of the ConductorLog entity.
// If the ConductorLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConductorLogMutation) OldMissionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMissionID: %w", err)
	}
	return oldValue.MissionID, nil
}

// ClearMissionID clears the value of the "mission_id" field.
func (m *ConductorLogMutation) ClearMissionID() {
	m.mission_id = nil
	m.clearedFields[conductorlog.FieldMissionID] = struct{}{}
}

// MissionIDCleared returns if the "mission_id" field was cleared in this mutation.
func (m *ConductorLogMutation) MissionIDCleared() bool {
	_, ok := m.clearedFields[conductorlog.FieldMissionID]
	return ok
}

// ResetMissionID resets all changes to the "mission_id" field.
func (m *ConductorLogMutation) ResetMissionID() {
	m.mission_id = nil
	delete(m.clearedFields, conductorlog.FieldMissionID)
}

// SetConductorAgent sets the "conductor_agent" field.
func (m *ConductorLogMutation) SetConductorAgent(s string) {
	m.conductor_agent = &s
}

// ConductorAgent returns the value of the "conductor_agent" field in the mutation.
func (m *ConductorLogMutation) ConductorAgent() (r string, exists bool) {
	v := m.conductor_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldConductorAgent returns the old "conductor_agent" field's value of the ConductorLog entity.
// If the ConductorLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConductorLogMutation) OldConductorAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConductorAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConductorAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConductorAgent: %w", err)
	}
	return oldValue.ConductorAgent, nil
}

// ResetConductorAgent resets all changes to the "conductor_agent" field.
func (m *ConductorLogMutation) ResetConductorAgent() {
	m.conductor_agent = nil
}

// SetDelegationTarget sets the "delegation_target" field.
func (m *ConductorLogMutation) SetDelegationTarget(s string) {
	m.delegation_target = &s
}

// DelegationTarget returns the value of the "delegation_target" field in the mutation.
func (m *ConductorLogMutation) DelegationTarget() (r string, exists bool) {
	v := m.delegation_target
	if v == nil {
		return
	}
	return *v, true
}

// OldDelegationTarget returns the old "delegation_target" field's value of the ConductorLog entity.
// If the ConductorLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConductorLogMutation) OldDelegationTarget(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDelegationTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDelegationTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDelegationTarget: %w", err)
	}
	return oldValue.DelegationTarget, nil
}

// ResetDelegationTarget resets all changes to the "delegation_target" field.
func (m *ConductorLogMutation) ResetDelegationTarget() {
	m.delegation_target = nil
}

// SetReasoning sets the "reasoning" field.
func (m *ConductorLogMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *ConductorLogMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the ConductorLog entity.
// If the ConductorLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConductorLogMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *ConductorLogMutation) ResetReasoning() {
	m.reasoning = nil
}

// SetInjectedContext sets the "injected_context" field.
func (m *ConductorLogMutation) SetInjectedContext(value map[string]interface{}) {
	m.injected_context = &value
}

// InjectedContext returns the value of the "injected_context" field in the mutation.
func (m *ConductorLogMutation) InjectedContext() (r map[string]interface{}, exists bool) {
	v := m.injected_context
	if v == nil {
		return
	}
	return *v, true
}

// OldInjectedContext returns the old "injected_context" field's value of the ConductorLog entity.
// If the ConductorLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConductorLogMutation) OldInjectedContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInjectedContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInjectedContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInjectedContext: %w", err)
	}
	return oldValue.InjectedContext, nil
}

// ClearInjectedContext clears the value of the "injected_context" field.
func (m *ConductorLogMutation) ClearInjectedContext() {
	m.injected_context = nil
	m.clearedFields[conductorlog.FieldInjectedContext] = struct{}{}
}

// InjectedContextCleared returns if the "injected_context" field was cleared in this mutation.
func (m *ConductorLogMutation) InjectedContextCleared() bool {
	_, ok := m.clearedFields[conductorlog.FieldInjectedContext]
	return ok
}

// ResetInjectedContext resets all changes to the "injected_context" field.
func (m *ConductorLogMutation) ResetInjectedContext() {
	m.injected_context = nil
	delete(m.clearedFields, conductorlog.FieldInjectedContext)
}

// SetDecisionFactors sets the "decision_factors" field.
func (m *ConductorLogMutation) SetDecisionFactors(s []string) {
	m.decision_factors = &s
	m.appenddecision_factors = nil
}

// DecisionFactors returns the value of the "decision_factors" field in the mutation.
func (m *ConductorLogMutation) DecisionFactors() (r []string, exists bool) {
	v := m.decision_factors
	if v == nil {
		return
	}
	return *v, true
}

// OldDecisionFactors returns the old "decision_factors" field's value of the ConductorLog entity.
// If the ConductorLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConductorLogMutation) OldDecisionFactors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecisionFactors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecisionFactors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecisionFactors: %w", err)
	}
	return oldValue.DecisionFactors, nil
}

// AppendDecisionFactors adds s to the "decision_factors" field.
func (m *ConductorLogMutation) AppendDecisionFactors(s []string) {
	m.appenddecision_factors = append(m.appenddecision_factors, s...)
}

// AppendedDecisionFactors returns the list of values that were appended to the "decision_factors" field in this mutation.
func (m *ConductorLogMutation) AppendedDecisionFactors() ([]string, bool) {
	if len(m.appenddecision_factors) == 0 {
		return nil, false
	}
	return m.appenddecision_factors, true
}

// ClearDecisionFactors clears the value of the "decision_factors" field.
func (m *ConductorLogMutation) ClearDecisionFactors() {
	m.decision_factors = nil
	m.appenddecision_factors = nil
	m.clearedFields[conductorlog.FieldDecisionFactors] = struct{}{}
}

// DecisionFactorsCleared returns if the "decision_factors" field was cleared in this mutation.
func (m *ConductorLogMutation) DecisionFactorsCleared() bool {
	_, ok := m.clearedFields[conductorlog.FieldDecisionFactors]
	return ok
}

// ResetDecisionFactors resets all changes to the "decision_factors" field.
func (m *ConductorLogMutation) ResetDecisionFactors() {
	m.decision_factors = nil
	m.appenddecision_factors = nil
	delete(m.clearedFields, conductorlog.FieldDecisionFactors)
}

// SetConfidence sets the "confidence" field.
func (m *ConductorLogMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ConductorLogMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ConductorLog entity.
// If the ConductorLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConductorLogMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ConductorLogMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ConductorLogMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *ConductorLogMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[conductorlog.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *ConductorLogMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[conductorlog.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ConductorLogMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, conductorlog.FieldConfidence)
}

// SetOutcome sets the "outcome" field.
func (m *ConductorLogMutation) SetOutcome(c conductorlog.Outcome) {
	m.outcome = &c
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *ConductorLogMutation) Outcome() (r conductorlog.Outcome, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the ConductorLog entity.
// If the ConductorLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConductorLogMutation) OldOutcome(ctx context.Context) (v *conductorlog.Outcome, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ClearOutcome clears the value of the "outcome" field.
func (m *ConductorLogMutation) ClearOutcome() {
	m.outcome = nil
	m.clearedFields[conductorlog.FieldOutcome] = struct{}{}
}

// OutcomeCleared returns if the "outcome" field was cleared in this mutation.
func (m *ConductorLogMutation) OutcomeCleared() bool {
	_, ok := m.clearedFields[conductorlog.FieldOutcome]
	return ok
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *ConductorLogMutation) ResetOutcome() {
	m.outcome = nil
	delete(m.clearedFields, conductorlog.FieldOutcome)
}

// SetOutcomeNotes sets the "outcome_notes" field.
func (m *ConductorLogMutation) SetOutcomeNotes(s string) {
	m.outcome_notes = &s
}

// OutcomeNotes returns the value of the "outcome_notes" field in the mutation.
func (m *ConductorLogMutation) OutcomeNotes() (r string, exists bool) {
	v := m.outcome_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcomeNotes returns the old "outcome_notes" field's value of the ConductorLog entity.
// If the ConductorLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConductorLogMutation) OldOutcomeNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcomeNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcomeNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcomeNotes: %w", err)
	}
	return oldValue.OutcomeNotes, nil
}

// ClearOutcomeNotes clears the value of the "outcome_notes" field.
func (m *ConductorLogMutation) ClearOutcomeNotes() {
	m.outcome_notes = nil
	m.clearedFields[conductorlog.FieldOutcomeNotes] = struct{}{}
}

// OutcomeNotesCleared returns if the "outcome_notes" field was cleared in this mutation.
func (m *ConductorLogMutation) OutcomeNotesCleared() bool {
	_, ok := m.clearedFields[conductorlog.FieldOutcomeNotes]
	return ok
}

// ResetOutcomeNotes resets all changes to the "outcome_notes" field.
func (m *ConductorLogMutation) ResetOutcomeNotes() {
	m.outcome_notes = nil
	delete(m.clearedFields, conductorlog.FieldOutcomeNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *ConductorLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConductorLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConductorLog entity.
// If the ConductorLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConductorLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConductorLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetOutcomeAt sets the "outcome_at" field.
func (m *ConductorLogMutation) SetOutcomeAt(t time.Time) {
	m.outcome_at = &t
}

// OutcomeAt returns the value of the "outcome_at" field in the mutation.
func (m *ConductorLogMutation) OutcomeAt() (r time.Time, exists bool) {
	v := m.outcome_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcomeAt returns the old "outcome_at" field's value of the ConductorLog entity.
// If the ConductorLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConductorLogMutation) OldOutcomeAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcomeAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcomeAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcomeAt: %w", err)
	}
	return oldValue.OutcomeAt, nil
}

// ClearOutcomeAt clears the value of the "outcome_at" field.
func (m *ConductorLogMutation) ClearOutcomeAt() {
	m.outcome_at = nil
	m.clearedFields[conductorlog.FieldOutcomeAt] = struct{}{}
}

// OutcomeAtCleared returns if the "outcome_at" field was cleared in this mutation.
func (m *ConductorLogMutation) OutcomeAtCleared() bool {
	_, ok := m.clearedFields[conductorlog.FieldOutcomeAt]
	return ok
}

// ResetOutcomeAt resets all changes to the "outcome_at" field.
func (m *ConductorLogMutation) ResetOutcomeAt() {
	m.outcome_at = nil
	delete(m.clearedFields, conductorlog.FieldOutcomeAt)
}

// Where appends a list predicates to the ConductorLogMutation builder.
func (m *ConductorLogMutation) Where(ps ...predicate.ConductorLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConductorLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConductorLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConductorLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConductorLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConductorLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConductorLog).
func (m *ConductorLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConductorLogMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.work_order_id != nil {
		fields = append(fields, conductorlog.FieldWorkOrderID)
	}
	if m.mission_id != nil {
		fields = append(fields, conductorlog.FieldMissionID)
	}
	if m.conductor_agent != nil {
		fields = append(fields, conductorlog.FieldConductorAgent)
	}
	if m.delegation_target != nil {
		fields = append(fields, conductorlog.FieldDelegationTarget)
	}
	if m.reasoning != nil {
		fields = append(fields, conductorlog.FieldReasoning)
	}
	if m.injected_context != nil {
		fields = append(fields, conductorlog.FieldInjectedContext)
	}
	if m.decision_factors != nil {
		fields = append(fields, conductorlog.FieldDecisionFactors)
	}
	if m.confidence != nil {
		fields = append(fields, conductorlog.FieldConfidence)
	}
	if m.outcome != nil {
		fields = append(fields, conductorlog.FieldOutcome)
	}
	if m.outcome_notes != nil {
		fields = append(fields, conductorlog.FieldOutcomeNotes)
	}
	if m.created_at != nil {
		fields = append(fields, conductorlog.FieldCreatedAt)
	}
	if m.outcome_at != nil {
		fields = append(fields, conductorlog.FieldOutcomeAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConductorLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conductorlog.FieldWorkOrderID:
		return m.WorkOrderID()
	case conductorlog.FieldMissionID:
		return m.MissionID()
	case conductorlog.FieldConductorAgent:
		return m.ConductorAgent()
	case conductorlog.FieldDelegationTarget:
		return m.DelegationTarget()
	case conductorlog.FieldReasoning:
		return m.Reasoning()
	case conductorlog.FieldInjectedContext:
		return m.InjectedContext()
	case conductorlog.FieldDecisionFactors:
		return m.DecisionFactors()
	case conductorlog.FieldConfidence:
		return m.Confidence()
	case conductorlog.FieldOutcome:
		return m.Outcome()
	case conductorlog.FieldOutcomeNotes:
		return m.OutcomeNotes()
	case conductorlog.FieldCreatedAt:
		return m.CreatedAt()
	case conductorlog.FieldOutcomeAt:
		return m.OutcomeAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConductorLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conductorlog.FieldWorkOrderID:
		return m.OldWorkOrderID(ctx)
	case conductorlog.FieldMissionID:
		return m.OldMissionID(ctx)
	case conductorlog.FieldConductorAgent:
		return m.OldConductorAgent(ctx)
	case conductorlog.FieldDelegationTarget:
		return m.OldDelegationTarget(ctx)
	case conductorlog.FieldReasoning:
		return m.OldReasoning(ctx)
	case conductorlog.FieldInjectedContext:
		return m.OldInjectedContext(ctx)
	case conductorlog.FieldDecisionFactors:
		return m.OldDecisionFactors(ctx)
	case conductorlog.FieldConfidence:
		return m.OldConfidence(ctx)
	case conductorlog.FieldOutcome:
		return m.OldOutcome(ctx)
	case conductorlog.FieldOutcomeNotes:
		return m.OldOutcomeNotes(ctx)
	case conductorlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case conductorlog.FieldOutcomeAt:
		return m.OldOutcomeAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConductorLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConductorLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conductorlog.FieldWorkOrderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkOrderID(v)
		return nil
	case conductorlog.FieldMissionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMissionID(v)
		return nil
	case conductorlog.FieldConductorAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConductorAgent(v)
		return nil
	case conductorlog.FieldDelegationTarget:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDelegationTarget(v)
		return nil
	case conductorlog.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case conductorlog.FieldInjectedContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInjectedContext(v)
		return nil
	case conductorlog.FieldDecisionFactors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecisionFactors(v)
		return nil
	case conductorlog.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case conductorlog.FieldOutcome:
		v, ok := value.(conductorlog.Outcome)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case conductorlog.FieldOutcomeNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcomeNotes(v)
		return nil
	case conductorlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case conductorlog.FieldOutcomeAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcomeAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConductorLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConductorLogMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, conductorlog.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConductorLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case conductorlog.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConductorLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case conductorlog.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ConductorLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConductorLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conductorlog.FieldMissionID) {
		fields = append(fields, conductorlog.FieldMissionID)
	}
	if m.FieldCleared(conductorlog.FieldInjectedContext) {
		fields = append(fields, conductorlog.FieldInjectedContext)
	}
	if m.FieldCleared(conductorlog.FieldDecisionFactors) {
		fields = append(fields, conductorlog.FieldDecisionFactors)
	}
	if m.FieldCleared(conductorlog.FieldConfidence) {
		fields = append(fields, conductorlog.FieldConfidence)
	}
	if m.FieldCleared(conductorlog.FieldOutcome) {
		fields = append(fields, conductorlog.FieldOutcome)
	}
	if m.FieldCleared(conductorlog.FieldOutcomeNotes) {
		fields = append(fields, conductorlog.FieldOutcomeNotes)
	}
	if m.FieldCleared(conductorlog.FieldOutcomeAt) {
		fields = append(fields, conductorlog.FieldOutcomeAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConductorLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConductorLogMutation) ClearField(name string) error {
	switch name {
	case conductorlog.FieldMissionID:
		m.ClearMissionID()
		return nil
	case conductorlog.FieldInjectedContext:
		m.ClearInjectedContext()
		return nil
	case conductorlog.FieldDecisionFactors:
		m.ClearDecisionFactors()
		return nil
	case conductorlog.FieldConfidence:
		m.ClearConfidence()
		return nil
	case conductorlog.FieldOutcome:
		m.ClearOutcome()
		return nil
	case conductorlog.FieldOutcomeNotes:
		m.ClearOutcomeNotes()
		return nil
	case conductorlog.FieldOutcomeAt:
		m.ClearOutcomeAt()
		return nil
	}
	return fmt.Errorf("unknown ConductorLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConductorLogMutation) ResetField(name string) error {
	switch name {
	case conductorlog.FieldWorkOrderID:
		m.ResetWorkOrderID()
		return nil
	case conductorlog.FieldMissionID:
		m.ResetMissionID()
		return nil
	case conductorlog.FieldConductorAgent:
		m.ResetConductorAgent()
		return nil
	case conductorlog.FieldDelegationTarget:
		m.ResetDelegationTarget()
		return nil
	case conductorlog.FieldReasoning:
		m.ResetReasoning()
		return nil
	case conductorlog.FieldInjectedContext:
		m.ResetInjectedContext()
		return nil
	case conductorlog.FieldDecisionFactors:
		m.ResetDecisionFactors()
		return nil
	case conductorlog.FieldConfidence:
		m.ResetConfidence()
		return nil
	case conductorlog.FieldOutcome:
		m.ResetOutcome()
		return nil
	case conductorlog.FieldOutcomeNotes:
		m.ResetOutcomeNotes()
		return nil
	case conductorlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case conductorlog.FieldOutcomeAt:
		m.ResetOutcomeAt()
		return nil
	}
	return fmt.Errorf("unknown ConductorLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConductorLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConductorLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConductorLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConductorLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConductorLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConductorLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConductorLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ConductorLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConductorLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ConductorLog edge %s", name)
}

// ConversationMessageMutation represents an operation that mutates the ConversationMessage nodes in the graph.
type ConversationMessageMutation struct {
	config
	op               Op
	typ              string
	id               *string
	role             *conversationmessage.Role
	message          *string
	tools_used       *[]string
	appendtools_used []string
	message_type     *string
	subtype          *string
	embedding        *pgvector.Vector
	metadata         *map[string]interface{}
	created_at       *time.Time
	clearedFields    map[string]struct{}
	session          *string
	clearedsession   bool
	done             bool
	oldValue         func(context.Context) (*ConversationMessage, error)
	predicates       []predicate.ConversationMessage
}

var _ ent.Mutation = (*ConversationMessageMutation)(nil)

// conversationmessageOption allows management of the mutation configuration using functional options.
type conversationmessageOption func(*ConversationMessageMutation)

// newConversationMessageMutation creates new mutation for the ConversationMessage entity.
func newConversationMessageMutation(c config, op Op, opts ...conversationmessageOption) *ConversationMessageMutation {
	m := &ConversationMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeConversationMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationMessageID sets the ID field of the mutation.
func withConversationMessageID(id string) conversationmessageOption {
	return func(m *ConversationMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ConversationMessage
		)
		m.oldValue = func(ctx context.Context) (*ConversationMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConversationMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversationMessage sets the old ConversationMessage of the mutation.
func withConversationMessage(node *ConversationMessage) conversationmessageOption {
	return func(m *ConversationMessageMutation) {
		m.oldValue = func(context.Context) (*ConversationMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConversationMessage entities.
func (m *ConversationMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConversationMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ConversationMessageMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ConversationMessageMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ConversationMessage entity.
// If the ConversationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMessageMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ConversationMessageMutation) ResetSessionID() {
	m.session = nil
}

// SetRole sets the "role" field.
func (m *ConversationMessageMutation) SetRole(c conversationmessage.Role) {
	m.role = &c
}

// Role returns the value of the "role" field in the mutation.
func (m *ConversationMessageMutation) Role() (r conversationmessage.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the ConversationMessage entity.
// If the ConversationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMessageMutation) OldRole(ctx context.Context) (v conversationmessage.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ConversationMessageMutation) ResetRole() {
	m.role = nil
}

// SetMessage sets the "message" field.
func (m *ConversationMessageMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *ConversationMessageMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the ConversationMessage entity.
// If the ConversationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMessageMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *ConversationMessageMutation) ResetMessage() {
	m.message = nil
}

// SetToolsUsed sets the "tools_used" field.
func (m *ConversationMessageMutation) SetToolsUsed(s []string) {
	m.tools_used = &s
	m.appendtools_used = nil
}

// ToolsUsed returns the value of the "tools_used" field in the mutation.
func (m *ConversationMessageMutation) ToolsUsed() (r []string, exists bool) {
	v := m.tools_used
	if v == nil {
		return
	}
	return *v, true
}

// OldToolsUsed returns the old "tools_used" field's value of the ConversationMessage entity.
// If the ConversationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMessageMutation) OldToolsUsed(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolsUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolsUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolsUsed: %w", err)
	}
	return oldValue.ToolsUsed, nil
}

// AppendToolsUsed adds s to the "tools_used" field.
func (m *ConversationMessageMutation) AppendToolsUsed(s []string) {
	m.appendtools_used = append(m.appendtools_used, s...)
}

// AppendedToolsUsed returns the list of values that were appended to the "tools_used" field in this mutation.
func (m *ConversationMessageMutation) AppendedToolsUsed() ([]string, bool) {
	if len(m.appendtools_used) == 0 {
		return nil, false
	}
	return m.appendtools_used, true
}

// ClearToolsUsed clears the value of the "tools_used" field.
func (m *ConversationMessageMutation) ClearToolsUsed() {
	m.tools_used = nil
	m.appendtools_used = nil
	m.clearedFields[conversationmessage.FieldToolsUsed] = struct{}{}
}

// ToolsUsedCleared returns if the "tools_used" field was cleared in this mutation.
func (m *ConversationMessageMutation) ToolsUsedCleared() bool {
	_, ok := m.clearedFields[conversationmessage.FieldToolsUsed]
	return ok
}

// ResetToolsUsed resets all changes to the "tools_used" field.
func (m *ConversationMessageMutation) ResetToolsUsed() {
	m.tools_used = nil
	m.appendtools_used = nil
	delete(m.clearedFields, conversationmessage.FieldToolsUsed)
}

// SetMessageType sets the "message_type" field.
func (m *ConversationMessageMutation) SetMessageType(s string) {
	m.message_type = &s
}

// MessageType returns the value of the "message_type" field in the mutation.
func (m *ConversationMessageMutation) MessageType() (r string, exists bool) {
	v := m.message_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageType returns the old "message_type" field's value of the ConversationMessage entity.
// If the ConversationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMessageMutation) OldMessageType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageType: %w", err)
	}
	return oldValue.MessageType, nil
}

// ClearMessageType clears the value of the "message_type" field.
func (m *ConversationMessageMutation) ClearMessageType() {
	m.message_type = nil
	m.clearedFields[conversationmessage.FieldMessageType] = struct{}{}
}

// MessageTypeCleared returns if the "message_type" field was cleared in this mutation.
func (m *ConversationMessageMutation) MessageTypeCleared() bool {
	_, ok := m.clearedFields[conversationmessage.FieldMessageType]
	return ok
}

// ResetMessageType resets all changes to the "message_type" field.
func (m *ConversationMessageMutation) ResetMessageType() {
	m.message_type = nil
	delete(m.clearedFields, conversationmessage.FieldMessageType)
}

// SetSubtype sets the "subtype" field.
func (m *ConversationMessageMutation) SetSubtype(s string) {
	m.subtype = &s
}

// Subtype returns the value of the "subtype" field in the mutation.
func (m *ConversationMessageMutation) Subtype() (r string, exists bool) {
	v := m.subtype
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtype returns the old "subtype" field's value of the ConversationMessage entity.
// If the ConversationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMessageMutation) OldSubtype(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtype is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtype requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtype: %w", err)
	}
	return oldValue.Subtype, nil
}

// ClearSubtype clears the value of the "subtype" field.
func (m *ConversationMessageMutation) ClearSubtype() {
	m.subtype = nil
	m.clearedFields[conversationmessage.FieldSubtype] = struct{}{}
}

// SubtypeCleared returns if the "subtype" field was cleared in this mutation.
func (m *ConversationMessageMutation) SubtypeCleared() bool {
	_, ok := m.clearedFields[conversationmessage.FieldSubtype]
	return ok
}

// ResetSubtype resets all changes to the "subtype" field.
func (m *ConversationMessageMutation) ResetSubtype() {
	m.subtype = nil
	delete(m.clearedFields, conversationmessage.FieldSubtype)
}

// SetEmbedding sets the "embedding" field.
func (m *ConversationMessageMutation) SetEmbedding(pg pgvector.Vector) {
	m.embedding = &pg
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *ConversationMessageMutation) Embedding() (r pgvector.Vector, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the ConversationMessage entity.
// If the ConversationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMessageMutation) OldEmbedding(ctx context.Context) (v *pgvector.Vector, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *ConversationMessageMutation) ClearEmbedding() {
	m.embedding = nil
	m.clearedFields[conversationmessage.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *ConversationMessageMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[conversationmessage.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *ConversationMessageMutation) ResetEmbedding() {
	m.embedding = nil
	delete(m.clearedFields, conversationmessage.FieldEmbedding)
}

// SetMetadata sets the "metadata" field.
func (m *ConversationMessageMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ConversationMessageMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ConversationMessage entity.
// If the ConversationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMessageMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ConversationMessageMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[conversationmessage.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ConversationMessageMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[conversationmessage.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ConversationMessageMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, conversationmessage.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversationMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversationMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConversationMessage entity.
// If the ConversationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversationMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *ConversationMessageMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[conversationmessage.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *ConversationMessageMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ConversationMessageMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ConversationMessageMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the ConversationMessageMutation builder.
func (m *ConversationMessageMutation) Where(ps ...predicate.ConversationMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConversationMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConversationMessage).
func (m *ConversationMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationMessageMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.session != nil {
		fields = append(fields, conversationmessage.FieldSessionID)
	}
	if m.role != nil {
		fields = append(fields, conversationmessage.FieldRole)
	}
	if m.message != nil {
		fields = append(fields, conversationmessage.FieldMessage)
	}
	if m.tools_used != nil {
		fields = append(fields, conversationmessage.FieldToolsUsed)
	}
	if m.message_type != nil {
		fields = append(fields, conversationmessage.FieldMessageType)
	}
	if m.subtype != nil {
		fields = append(fields, conversationmessage.FieldSubtype)
	}
	if m.embedding != nil {
		fields = append(fields, conversationmessage.FieldEmbedding)
	}
	if m.metadata != nil {
		fields = append(fields, conversationmessage.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, conversationmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversationmessage.FieldSessionID:
		return m.SessionID()
	case conversationmessage.FieldRole:
		return m.Role()
	case conversationmessage.FieldMessage:
		return m.Message()
	case conversationmessage.FieldToolsUsed:
		return m.ToolsUsed()
	case conversationmessage.FieldMessageType:
		return m.MessageType()
	case conversationmessage.FieldSubtype:
		return m.Subtype()
	case conversationmessage.FieldEmbedding:
		return m.Embedding()
	case conversationmessage.FieldMetadata:
		return m.Metadata()
	case conversationmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversationmessage.FieldSessionID:
		return m.OldSessionID(ctx)
	case conversationmessage.FieldRole:
		return m.OldRole(ctx)
	case conversationmessage.FieldMessage:
		return m.OldMessage(ctx)
	case conversationmessage.FieldToolsUsed:
		return m.OldToolsUsed(ctx)
	case conversationmessage.FieldMessageType:
		return m.OldMessageType(ctx)
	case conversationmessage.FieldSubtype:
		return m.OldSubtype(ctx)
	case conversationmessage.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case conversationmessage.FieldMetadata:
		return m.OldMetadata(ctx)
	case conversationmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConversationMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversationmessage.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case conversationmessage.FieldRole:
		v, ok := value.(conversationmessage.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case conversationmessage.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case conversationmessage.FieldToolsUsed:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolsUsed(v)
		return nil
	case conversationmessage.FieldMessageType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageType(v)
		return nil
	case conversationmessage.FieldSubtype:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtype(v)
		return nil
	case conversationmessage.FieldEmbedding:
		v, ok := value.(pgvector.Vector)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case conversationmessage.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case conversationmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConversationMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ConversationMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversationmessage.FieldToolsUsed) {
		fields = append(fields, conversationmessage.FieldToolsUsed)
	}
	if m.FieldCleared(conversationmessage.FieldMessageType) {
		fields = append(fields, conversationmessage.FieldMessageType)
	}
	if m.FieldCleared(conversationmessage.FieldSubtype) {
		fields = append(fields, conversationmessage.FieldSubtype)
	}
	if m.FieldCleared(conversationmessage.FieldEmbedding) {
		fields = append(fields, conversationmessage.FieldEmbedding)
	}
	if m.FieldCleared(conversationmessage.FieldMetadata) {
		fields = append(fields, conversationmessage.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationMessageMutation) ClearField(name string) error {
	switch name {
	case conversationmessage.FieldToolsUsed:
		m.ClearToolsUsed()
		return nil
	case conversationmessage.FieldMessageType:
		m.ClearMessageType()
		return nil
	case conversationmessage.FieldSubtype:
		m.ClearSubtype()
		return nil
	case conversationmessage.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	case conversationmessage.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown ConversationMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationMessageMutation) ResetField(name string) error {
	switch name {
	case conversationmessage.FieldSessionID:
		m.ResetSessionID()
		return nil
	case conversationmessage.FieldRole:
		m.ResetRole()
		return nil
	case conversationmessage.FieldMessage:
		m.ResetMessage()
		return nil
	case conversationmessage.FieldToolsUsed:
		m.ResetToolsUsed()
		return nil
	case conversationmessage.FieldMessageType:
		m.ResetMessageType()
		return nil
	case conversationmessage.FieldSubtype:
		m.ResetSubtype()
		return nil
	case conversationmessage.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case conversationmessage.FieldMetadata:
		m.ResetMetadata()
		return nil
	case conversationmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ConversationMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, conversationmessage.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conversationmessage.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, conversationmessage.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case conversationmessage.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationMessageMutation) ClearEdge(name string) error {
	switch name {
	case conversationmessage.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown ConversationMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationMessageMutation) ResetEdge(name string) error {
	switch name {
	case conversationmessage.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown ConversationMessage edge %s", name)
}

// CouncilDecisionMutation represents an operation that mutates the CouncilDecision nodes in the graph.
type CouncilDecisionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	work_order_id *string
	risk_level    *councildecision.RiskLevel
	decision      *councildecision.Decision
	decided_by    *councildecision.DecidedBy
	notes         *string
	created_at    *time.Time
	resolved_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*CouncilDecision, error)
	predicates    []predicate.CouncilDecision
}

var _ ent.Mutation = (*CouncilDecisionMutation)(nil)

// councildecisionOption allows management of the mutation configuration using functional options.
type councildecisionOption func(*CouncilDecisionMutation)

// newCouncilDecisionMutation creates new mutation for the CouncilDecision entity.
func newCouncilDecisionMutation(c config, op Op, opts ...councildecisionOption) *CouncilDecisionMutation {
	m := &CouncilDecisionMutation{
		config:        c,
		op:            op,
		typ:           TypeCouncilDecision,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCouncilDecisionID sets the ID field of the mutation.
func withCouncilDecisionID(id string) councildecisionOption {
	return func(m *CouncilDecisionMutation) {
		var (
			err   error
			once  sync.Once
			value *CouncilDecision
		)
		m.oldValue = func(ctx context.Context) (*CouncilDecision, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CouncilDecision.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCouncilDecision sets the old CouncilDecision of the mutation.
func withCouncilDecision(node *CouncilDecision) councildecisionOption {
	return func(m *CouncilDecisionMutation) {
		m.oldValue = func(context.Context) (*CouncilDecision, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CouncilDecisionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CouncilDecisionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CouncilDecision entities.
func (m *CouncilDecisionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CouncilDecisionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CouncilDecisionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CouncilDecision.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkOrderID sets the "work_order_id" field.
func (m *CouncilDecisionMutation) SetWorkOrderID(s string) {
	m.work_order_id = &s
}

// WorkOrderID returns the value of the "work_order_id" field in the mutation.
func (m *CouncilDecisionMutation) WorkOrderID() (r string, exists bool) {
	v := m.work_order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkOrderID returns the old "work_order_id" field's value of the CouncilDecision entity.
// If the CouncilDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CouncilDecisionMutation) OldWorkOrderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkOrderID: %w", err)
	}
	return oldValue.WorkOrderID, nil
}

// ResetWorkOrderID resets all changes to the "work_order_id" field.
func (m *CouncilDecisionMutation) ResetWorkOrderID() {
	m.work_order_id = nil
}

// SetRiskLevel sets the "risk_level" field.
func (m *CouncilDecisionMutation) SetRiskLevel(cl councildecision.RiskLevel) {
	m.risk_level = &cl
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *CouncilDecisionMutation) RiskLevel() (r councildecision.RiskLevel, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the CouncilDecision entity.
// If the CouncilDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CouncilDecisionMutation) OldRiskLevel(ctx context.Context) (v councildecision.RiskLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *CouncilDecisionMutation) ResetRiskLevel() {
	m.risk_level = nil
}

// SetDecision sets the "decision" field.
func (m *CouncilDecisionMutation) SetDecision(c councildecision.Decision) {
	m.decision = &c
}

// Decision returns the value of the "decision" field in the mutation.
func (m *CouncilDecisionMutation) Decision() (r councildecision.Decision, exists bool) {
	v := m.decision
	if v == nil {
		return
	}
	return *v, true
}

// OldDecision returns the old "decision" field's value of the CouncilDecision entity.
// If the CouncilDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CouncilDecisionMutation) OldDecision(ctx context.Context) (v councildecision.Decision, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecision: %w", err)
	}
	return oldValue.Decision, nil
}

// ResetDecision resets all changes to the "decision" field.
func (m *CouncilDecisionMutation) ResetDecision() {
	m.decision = nil
}

// SetDecidedBy sets the "decided_by" field.
func (m *CouncilDecisionMutation) SetDecidedBy(cb councildecision.DecidedBy) {
	m.decided_by = &cb
}

// DecidedBy returns the value of the "decided_by" field in the mutation.
func (m *CouncilDecisionMutation) DecidedBy() (r councildecision.DecidedBy, exists bool) {
	v := m.decided_by
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedBy returns the old "decided_by" field's value of the CouncilDecision entity.
// If the CouncilDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CouncilDecisionMutation) OldDecidedBy(ctx context.Context) (v councildecision.DecidedBy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedBy: %w", err)
	}
	return oldValue.DecidedBy, nil
}

// ResetDecidedBy resets all changes to the "decided_by" field.
func (m *CouncilDecisionMutation) ResetDecidedBy() {
	m.decided_by = nil
}

// SetNotes sets the "notes" field.
func (m *CouncilDecisionMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *CouncilDecisionMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the CouncilDecision entity.
// If the CouncilDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CouncilDecisionMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *CouncilDecisionMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[councildecision.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *CouncilDecisionMutation) NotesCleared() bool {
	_, ok := m.clearedFields[councildecision.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *CouncilDecisionMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, councildecision.FieldNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *CouncilDecisionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CouncilDecisionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CouncilDecision entity.
// If the CouncilDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CouncilDecisionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CouncilDecisionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *CouncilDecisionMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *CouncilDecisionMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the CouncilDecision entity.
// If the CouncilDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CouncilDecisionMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *CouncilDecisionMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[councildecision.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *CouncilDecisionMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[councildecision.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *CouncilDecisionMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, councildecision.FieldResolvedAt)
}

// Where appends a list predicates to the CouncilDecisionMutation builder.
func (m *CouncilDecisionMutation) Where(ps ...predicate.CouncilDecision) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CouncilDecisionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CouncilDecisionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CouncilDecision, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CouncilDecisionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CouncilDecisionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CouncilDecision).
func (m *CouncilDecisionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CouncilDecisionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.work_order_id != nil {
		fields = append(fields, councildecision.FieldWorkOrderID)
	}
	if m.risk_level != nil {
		fields = append(fields, councildecision.FieldRiskLevel)
	}
	if m.decision != nil {
		fields = append(fields, councildecision.FieldDecision)
	}
	if m.decided_by != nil {
		fields = append(fields, councildecision.FieldDecidedBy)
	}
	if m.notes != nil {
		fields = append(fields, councildecision.FieldNotes)
	}
	if m.created_at != nil {
		fields = append(fields, councildecision.FieldCreatedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, councildecision.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CouncilDecisionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case councildecision.FieldWorkOrderID:
		return m.WorkOrderID()
	case councildecision.FieldRiskLevel:
		return m.RiskLevel()
	case councildecision.FieldDecision:
		return m.Decision()
	case councildecision.FieldDecidedBy:
		return m.DecidedBy()
	case councildecision.FieldNotes:
		return m.Notes()
	case councildecision.FieldCreatedAt:
		return m.CreatedAt()
	case councildecision.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CouncilDecisionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case councildecision.FieldWorkOrderID:
		return m.OldWorkOrderID(ctx)
	case councildecision.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case councildecision.FieldDecision:
		return m.OldDecision(ctx)
	case councildecision.FieldDecidedBy:
		return m.OldDecidedBy(ctx)
	case councildecision.FieldNotes:
		return m.OldNotes(ctx)
	case councildecision.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case councildecision.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CouncilDecision field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CouncilDecisionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case councildecision.FieldWorkOrderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkOrderID(v)
		return nil
	case councildecision.FieldRiskLevel:
		v, ok := value.(councildecision.RiskLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case councildecision.FieldDecision:
		v, ok := value.(councildecision.Decision)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecision(v)
		return nil
	case councildecision.FieldDecidedBy:
		v, ok := value.(councildecision.DecidedBy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedBy(v)
		return nil
	case councildecision.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case councildecision.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case councildecision.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CouncilDecision field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CouncilDecisionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CouncilDecisionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CouncilDecisionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CouncilDecision numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CouncilDecisionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(councildecision.FieldNotes) {
		fields = append(fields, councildecision.FieldNotes)
	}
	if m.FieldCleared(councildecision.FieldResolvedAt) {
		fields = append(fields, councildecision.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CouncilDecisionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CouncilDecisionMutation) ClearField(name string) error {
	switch name {
	case councildecision.FieldNotes:
		m.ClearNotes()
		return nil
	case councildecision.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown CouncilDecision nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CouncilDecisionMutation) ResetField(name string) error {
	switch name {
	case councildecision.FieldWorkOrderID:
		m.ResetWorkOrderID()
		return nil
	case councildecision.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case councildecision.FieldDecision:
		m.ResetDecision()
		return nil
	case councildecision.FieldDecidedBy:
		m.ResetDecidedBy()
		return nil
	case councildecision.FieldNotes:
		m.ResetNotes()
		return nil
	case councildecision.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case councildecision.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown CouncilDecision field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CouncilDecisionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CouncilDecisionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CouncilDecisionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CouncilDecisionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CouncilDecisionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CouncilDecisionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CouncilDecisionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CouncilDecision unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CouncilDecisionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CouncilDecision edge %s", name)
}

// HandoffMutation represents an operation that mutates the Handoff nodes in the graph.
type HandoffMutation struct {
	config
	op             Op
	typ            string
	id             *string
	from_agent     *string
	to_agent       *string
	context        *map[string]interface{}
	notes          *string
	status         *handoff.Status
	created_at     *time.Time
	accepted_at    *time.Time
	completed_at   *time.Time
	metadata       *map[string]interface{}
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*Handoff, error)
	predicates     []predicate.Handoff
}

var _ ent.Mutation = (*HandoffMutation)(nil)

// handoffOption allows management of the mutation configuration using functional options.
type handoffOption func(*HandoffMutation)

// newHandoffMutation creates new mutation for the Handoff entity.
func newHandoffMutation(c config, op Op, opts ...handoffOption) *HandoffMutation {
	m := &HandoffMutation{
		config:        c,
		op:            op,
		typ:           TypeHandoff,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHandoffID sets the ID field of the mutation.
func withHandoffID(id string) handoffOption {
	return func(m *HandoffMutation) {
		var (
			err   error
			once  sync.Once
			value *Handoff
		)
		m.oldValue = func(ctx context.Context) (*Handoff, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Handoff.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHandoff sets the old Handoff of the mutation.
func withHandoff(node *Handoff) handoffOption {
	return func(m *HandoffMutation) {
		m.oldValue = func(context.Context) (*Handoff, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HandoffMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HandoffMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Handoff entities.
func (m *HandoffMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HandoffMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HandoffMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Handoff.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *HandoffMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *HandoffMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Handoff entity.
// If the Handoff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HandoffMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *HandoffMutation) ResetSessionID() {
	m.session = nil
}

// SetFromAgent sets the "from_agent" field.
func (m *HandoffMutation) SetFromAgent(s string) {
	m.from_agent = &s
}

// FromAgent returns the value of the "from_agent" field in the mutation.
func (m *HandoffMutation) FromAgent() (r string, exists bool) {
	v := m.from_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldFromAgent returns the old "from_agent" field's value of the Handoff entity.
// If the Handoff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HandoffMutation) OldFromAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromAgent: %w", err)
	}
	return oldValue.FromAgent, nil
}

// ResetFromAgent resets all changes to the "from_agent" field.
func (m *HandoffMutation) ResetFromAgent() {
	m.from_agent = nil
}

// SetToAgent sets the "to_agent" field.
func (m *HandoffMutation) SetToAgent(s string) {
	m.to_agent = &s
}

// ToAgent returns the value of the "to_agent" field in the mutation.
func (m *HandoffMutation) ToAgent() (r string, exists bool) {
	v := m.to_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldToAgent returns the old "to_agent" field's value of the Handoff entity.
// If the Handoff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HandoffMutation) OldToAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToAgent: %w", err)
	}
	return oldValue.ToAgent, nil
}

// ResetToAgent resets all changes to the "to_agent" field.
func (m *HandoffMutation) ResetToAgent() {
	m.to_agent = nil
}

// SetContext sets the "context" field.
func (m *HandoffMutation) SetContext(value map[string]interface{}) {
	m.context = &value
}

// Context returns the value of the "context" field in the mutation.
func (m *HandoffMutation) Context() (r map[string]interface{}, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the Handoff entity.
// If the Handoff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HandoffMutation) OldContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *HandoffMutation) ClearContext() {
	m.context = nil
	m.clearedFields[handoff.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *HandoffMutation) ContextCleared() bool {
	_, ok := m.clearedFields[handoff.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *HandoffMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, handoff.FieldContext)
}

// SetNotes sets the "notes" field.
func (m *HandoffMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *HandoffMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Handoff entity.
// If the Handoff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HandoffMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *HandoffMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[handoff.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *HandoffMutation) NotesCleared() bool {
	_, ok := m.clearedFields[handoff.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *HandoffMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, handoff.FieldNotes)
}

// SetStatus sets the "status" field.
func (m *HandoffMutation) SetStatus(h handoff.Status) {
	m.status = &h
}

// Status returns the value of the "status" field in the mutation.
func (m *HandoffMutation) Status() (r handoff.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Handoff entity.
// If the Handoff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HandoffMutation) OldStatus(ctx context.Context) (v handoff.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *HandoffMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *HandoffMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HandoffMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Handoff entity.
// If the Handoff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HandoffMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HandoffMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetAcceptedAt sets the "accepted_at" field.
func (m *HandoffMutation) SetAcceptedAt(t time.Time) {
	m.accepted_at = &t
}

// AcceptedAt returns the value of the "accepted_at" field in the mutation.
func (m *HandoffMutation) AcceptedAt() (r time.Time, exists bool) {
	v := m.accepted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcceptedAt returns the old "accepted_at" field's value of the Handoff entity.
// If the Handoff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HandoffMutation) OldAcceptedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcceptedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcceptedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcceptedAt: %w", err)
	}
	return oldValue.AcceptedAt, nil
}

// ClearAcceptedAt clears the value of the "accepted_at" field.
func (m *HandoffMutation) ClearAcceptedAt() {
	m.accepted_at = nil
	m.clearedFields[handoff.FieldAcceptedAt] = struct{}{}
}

// AcceptedAtCleared returns if the "accepted_at" field was cleared in this mutation.
func (m *HandoffMutation) AcceptedAtCleared() bool {
	_, ok := m.clearedFields[handoff.FieldAcceptedAt]
	return ok
}

// ResetAcceptedAt resets all changes to the "accepted_at" field.
func (m *HandoffMutation) ResetAcceptedAt() {
	m.accepted_at = nil
	delete(m.clearedFields, handoff.FieldAcceptedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *HandoffMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *HandoffMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Handoff entity.
// If the Handoff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HandoffMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *HandoffMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[handoff.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *HandoffMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[handoff.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *HandoffMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, handoff.FieldCompletedAt)
}

// SetMetadata sets the "metadata" field.
func (m *HandoffMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *HandoffMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Handoff entity.
// If the Handoff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HandoffMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *HandoffMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[handoff.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *HandoffMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[handoff.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *HandoffMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, handoff.FieldMetadata)
}

// ClearSession clears the "session" edge to the Session entity.
func (m *HandoffMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[handoff.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *HandoffMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *HandoffMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *HandoffMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the HandoffMutation builder.
func (m *HandoffMutation) Where(ps ...predicate.Handoff) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HandoffMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HandoffMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Handoff, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HandoffMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HandoffMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Handoff).
func (m *HandoffMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HandoffMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.session != nil {
		fields = append(fields, handoff.FieldSessionID)
	}
	if m.from_agent != nil {
		fields = append(fields, handoff.FieldFromAgent)
	}
	if m.to_agent != nil {
		fields = append(fields, handoff.FieldToAgent)
	}
	if m.context != nil {
		fields = append(fields, handoff.FieldContext)
	}
	if m.notes != nil {
		fields = append(fields, handoff.FieldNotes)
	}
	if m.status != nil {
		fields = append(fields, handoff.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, handoff.FieldCreatedAt)
	}
	if m.accepted_at != nil {
		fields = append(fields, handoff.FieldAcceptedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, handoff.FieldCompletedAt)
	}
	if m.metadata != nil {
		fields = append(fields, handoff.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HandoffMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case handoff.FieldSessionID:
		return m.SessionID()
	case handoff.FieldFromAgent:
		return m.FromAgent()
	case handoff.FieldToAgent:
		return m.ToAgent()
	case handoff.FieldContext:
		return m.Context()
	case handoff.FieldNotes:
		return m.Notes()
	case handoff.FieldStatus:
		return m.Status()
	case handoff.FieldCreatedAt:
		return m.CreatedAt()
	case handoff.FieldAcceptedAt:
		return m.AcceptedAt()
	case handoff.FieldCompletedAt:
		return m.CompletedAt()
	case handoff.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HandoffMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case handoff.FieldSessionID:
		return m.OldSessionID(ctx)
	case handoff.FieldFromAgent:
		return m.OldFromAgent(ctx)
	case handoff.FieldToAgent:
		return m.OldToAgent(ctx)
	case handoff.FieldContext:
		return m.OldContext(ctx)
	case handoff.FieldNotes:
		return m.OldNotes(ctx)
	case handoff.FieldStatus:
		return m.OldStatus(ctx)
	case handoff.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case handoff.FieldAcceptedAt:
		return m.OldAcceptedAt(ctx)
	case handoff.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case handoff.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown Handoff field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HandoffMutation) SetField(name string, value ent.Value) error {
	switch name {
	case handoff.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case handoff.FieldFromAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromAgent(v)
		return nil
	case handoff.FieldToAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToAgent(v)
		return nil
	case handoff.FieldContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case handoff.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case handoff.FieldStatus:
		v, ok := value.(handoff.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case handoff.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case handoff.FieldAcceptedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcceptedAt(v)
		return nil
	case handoff.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case handoff.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown Handoff field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HandoffMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HandoffMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HandoffMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Handoff numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HandoffMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(handoff.FieldContext) {
		fields = append(fields, handoff.FieldContext)
	}
	if m.FieldCleared(handoff.FieldNotes) {
		fields = append(fields, handoff.FieldNotes)
	}
	if m.FieldCleared(handoff.FieldAcceptedAt) {
		fields = append(fields, handoff.FieldAcceptedAt)
	}
	if m.FieldCleared(handoff.FieldCompletedAt) {
		fields = append(fields, handoff.FieldCompletedAt)
	}
	if m.FieldCleared(handoff.FieldMetadata) {
		fields = append(fields, handoff.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HandoffMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HandoffMutation) ClearField(name string) error {
	switch name {
	case handoff.FieldContext:
		m.ClearContext()
		return nil
	case handoff.FieldNotes:
		m.ClearNotes()
		return nil
	case handoff.FieldAcceptedAt:
		m.ClearAcceptedAt()
		return nil
	case handoff.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case handoff.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Handoff nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HandoffMutation) ResetField(name string) error {
	switch name {
	case handoff.FieldSessionID:
		m.ResetSessionID()
		return nil
	case handoff.FieldFromAgent:
		m.ResetFromAgent()
		return nil
	case handoff.FieldToAgent:
		m.ResetToAgent()
		return nil
	case handoff.FieldContext:
		m.ResetContext()
		return nil
	case handoff.FieldNotes:
		m.ResetNotes()
		return nil
	case handoff.FieldStatus:
		m.ResetStatus()
		return nil
	case handoff.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case handoff.FieldAcceptedAt:
		m.ResetAcceptedAt()
		return nil
	case handoff.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case handoff.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown Handoff field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HandoffMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, handoff.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HandoffMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case handoff.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HandoffMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HandoffMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HandoffMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, handoff.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HandoffMutation) EdgeCleared(name string) bool {
	switch name {
	case handoff.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HandoffMutation) ClearEdge(name string) error {
	switch name {
	case handoff.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Handoff unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HandoffMutation) ResetEdge(name string) error {
	switch name {
	case handoff.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Handoff edge %s", name)
}

// PatternMutation represents an operation that mutates the Pattern nodes in the graph.
type PatternMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	pattern_type        *pattern.PatternType
	domain              *string
	description         *string
	action              *string
	outcome             *string
	context             *map[string]interface{}
	embedding           *pgvector.Vector
	created_by          *string
	metadata            *map[string]interface{}
	created_at          *time.Time
	clearedFields       map[string]struct{}
	observations        map[string]struct{}
	removedobservations map[string]struct{}
	clearedobservations bool
	done                bool
	oldValue            func(context.Context) (*Pattern, error)
	predicates          []predicate.Pattern
}

var _ ent.Mutation = (*PatternMutation)(nil)

// patternOption allows management of the mutation configuration using functional options.
type patternOption func(*PatternMutation)

// newPatternMutation creates new mutation for the Pattern entity.
func newPatternMutation(c config, op Op, opts ...patternOption) *PatternMutation {
	m := &PatternMutation{
		config:        c,
		op:            op,
		typ:           TypePattern,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatternID sets the ID field of the mutation.
func withPatternID(id string) patternOption {
	return func(m *PatternMutation) {
		var (
			err   error
			once  sync.Once
			value *Pattern
		)
		m.oldValue = func(ctx context.Context) (*Pattern, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Pattern.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPattern sets the old Pattern of the mutation.
func withPattern(node *Pattern) patternOption {
	return func(m *PatternMutation) {
		m.oldValue = func(context.Context) (*Pattern, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatternMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatternMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Pattern entities.
func (m *PatternMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatternMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatternMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Pattern.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPatternType sets the "pattern_type" field.
func (m *PatternMutation) SetPatternType(pt pattern.PatternType) {
	m.pattern_type = &pt
}

// PatternType returns the value of the "pattern_type" field in the mutation.
func (m *PatternMutation) PatternType() (r pattern.PatternType, exists bool) {
	v := m.pattern_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPatternType returns the old "pattern_type" field's value of the Pattern entity.
// If the Pattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternMutation) OldPatternType(ctx context.Context) (v pattern.PatternType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatternType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatternType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatternType: %w", err)
	}
	return oldValue.PatternType, nil
}

// ResetPatternType resets all changes to the "pattern_type" field.
func (m *PatternMutation) ResetPatternType() {
	m.pattern_type = nil
}

// SetDomain sets the "domain" field.
func (m *PatternMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *PatternMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the Pattern entity.
// If the Pattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ResetDomain resets all changes to the "domain" field.
func (m *PatternMutation) ResetDomain() {
	m.domain = nil
}

// SetDescription sets the "description" field.
func (m *PatternMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PatternMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Pattern entity.
// If the Pattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *PatternMutation) ResetDescription() {
	m.description = nil
}

// SetAction sets the "action" field.
func (m *PatternMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *PatternMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the Pattern entity.
// If the Pattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *PatternMutation) ResetAction() {
	m.action = nil
}

// SetOutcome sets the "outcome" field.
func (m *PatternMutation) SetOutcome(s string) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *PatternMutation) Outcome() (r string, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the Pattern entity.
// If the Pattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternMutation) OldOutcome(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ClearOutcome clears the value of the "outcome" field.
func (m *PatternMutation) ClearOutcome() {
	m.outcome = nil
	m.clearedFields[pattern.FieldOutcome] = struct{}{}
}

// OutcomeCleared returns if the "outcome" field was cleared in this mutation.
func (m *PatternMutation) OutcomeCleared() bool {
	_, ok := m.clearedFields[pattern.FieldOutcome]
	return ok
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *PatternMutation) ResetOutcome() {
	m.outcome = nil
	delete(m.clearedFields, pattern.FieldOutcome)
}

// SetContext sets the "context" field.
func (m *PatternMutation) SetContext(value map[string]interface{}) {
	m.context = &value
}

// Context returns the value of the "context" field in the mutation.
func (m *PatternMutation) Context() (r map[string]interface{}, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the Pattern entity.
// If the Pattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternMutation) OldContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *PatternMutation) ClearContext() {
	m.context = nil
	m.clearedFields[pattern.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *PatternMutation) ContextCleared() bool {
	_, ok := m.clearedFields[pattern.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *PatternMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, pattern.FieldContext)
}

// SetEmbedding sets the "embedding" field.
func (m *PatternMutation) SetEmbedding(pg pgvector.Vector) {
	m.embedding = &pg
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *PatternMutation) Embedding() (r pgvector.Vector, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the Pattern entity.
// If the Pattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternMutation) OldEmbedding(ctx context.Context) (v *pgvector.Vector, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *PatternMutation) ClearEmbedding() {
	m.embedding = nil
	m.clearedFields[pattern.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *PatternMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[pattern.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *PatternMutation) ResetEmbedding() {
	m.embedding = nil
	delete(m.clearedFields, pattern.FieldEmbedding)
}

// SetCreatedBy sets the "created_by" field.
func (m *PatternMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *PatternMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Pattern entity.
// If the Pattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *PatternMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetMetadata sets the "metadata" field.
func (m *PatternMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *PatternMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Pattern entity.
// If the Pattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *PatternMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[pattern.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *PatternMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[pattern.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *PatternMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, pattern.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *PatternMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatternMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Pattern entity.
// If the Pattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PatternMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddObservationIDs adds the "observations" edge to the PatternObservation entity by ids.
func (m *PatternMutation) AddObservationIDs(ids ...string) {
	if m.observations == nil {
		m.observations = make(map[string]struct{})
	}
	for i := range ids {
		m.observations[ids[i]] = struct{}{}
	}
}

// ClearObservations clears the "observations" edge to the PatternObservation entity.
func (m *PatternMutation) ClearObservations() {
	m.clearedobservations = true
}

// ObservationsCleared reports if the "observations" edge to the PatternObservation entity was cleared.
func (m *PatternMutation) ObservationsCleared() bool {
	return m.clearedobservations
}

// RemoveObservationIDs removes the "observations" edge to the PatternObservation entity by IDs.
func (m *PatternMutation) RemoveObservationIDs(ids ...string) {
	if m.removedobservations == nil {
		m.removedobservations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.observations, ids[i])
		m.removedobservations[ids[i]] = struct{}{}
	}
}

// RemovedObservations returns the removed IDs of the "observations" edge to the PatternObservation entity.
func (m *PatternMutation) RemovedObservationsIDs() (ids []string) {
	for id := range m.removedobservations {
		ids = append(ids, id)
	}
	return
}

// ObservationsIDs returns the "observations" edge IDs in the mutation.
func (m *PatternMutation) ObservationsIDs() (ids []string) {
	for id := range m.observations {
		ids = append(ids, id)
	}
	return
}

// ResetObservations resets all changes to the "observations" edge.
func (m *PatternMutation) ResetObservations() {
	m.observations = nil
	m.clearedobservations = false
	m.removedobservations = nil
}

// Where appends a list predicates to the PatternMutation builder.
func (m *PatternMutation) Where(ps ...predicate.Pattern) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatternMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatternMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Pattern, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatternMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatternMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Pattern).
func (m *PatternMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatternMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.pattern_type != nil {
		fields = append(fields, pattern.FieldPatternType)
	}
	if m.domain != nil {
		fields = append(fields, pattern.FieldDomain)
	}
	if m.description != nil {
		fields = append(fields, pattern.FieldDescription)
	}
	if m.action != nil {
		fields = append(fields, pattern.FieldAction)
	}
	if m.outcome != nil {
		fields = append(fields, pattern.FieldOutcome)
	}
	if m.context != nil {
		fields = append(fields, pattern.FieldContext)
	}
	if m.embedding != nil {
		fields = append(fields, pattern.FieldEmbedding)
	}
	if m.created_by != nil {
		fields = append(fields, pattern.FieldCreatedBy)
	}
	if m.metadata != nil {
		fields = append(fields, pattern.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, pattern.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatternMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pattern.FieldPatternType:
		return m.PatternType()
	case pattern.FieldDomain:
		return m.Domain()
	case pattern.FieldDescription:
		return m.Description()
	case pattern.FieldAction:
		return m.Action()
	case pattern.FieldOutcome:
		return m.Outcome()
	case pattern.FieldContext:
		return m.Context()
	case pattern.FieldEmbedding:
		return m.Embedding()
	case pattern.FieldCreatedBy:
		return m.CreatedBy()
	case pattern.FieldMetadata:
		return m.Metadata()
	case pattern.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatternMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pattern.FieldPatternType:
		return m.OldPatternType(ctx)
	case pattern.FieldDomain:
		return m.OldDomain(ctx)
	case pattern.FieldDescription:
		return m.OldDescription(ctx)
	case pattern.FieldAction:
		return m.OldAction(ctx)
	case pattern.FieldOutcome:
		return m.OldOutcome(ctx)
	case pattern.FieldContext:
		return m.OldContext(ctx)
	case pattern.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case pattern.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case pattern.FieldMetadata:
		return m.OldMetadata(ctx)
	case pattern.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Pattern field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatternMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pattern.FieldPatternType:
		v, ok := value.(pattern.PatternType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatternType(v)
		return nil
	case pattern.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case pattern.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case pattern.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case pattern.FieldOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case pattern.FieldContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case pattern.FieldEmbedding:
		v, ok := value.(pgvector.Vector)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case pattern.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case pattern.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case pattern.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Pattern field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatternMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatternMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatternMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Pattern numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatternMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pattern.FieldOutcome) {
		fields = append(fields, pattern.FieldOutcome)
	}
	if m.FieldCleared(pattern.FieldContext) {
		fields = append(fields, pattern.FieldContext)
	}
	if m.FieldCleared(pattern.FieldEmbedding) {
		fields = append(fields, pattern.FieldEmbedding)
	}
	if m.FieldCleared(pattern.FieldMetadata) {
		fields = append(fields, pattern.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatternMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatternMutation) ClearField(name string) error {
	switch name {
	case pattern.FieldOutcome:
		m.ClearOutcome()
		return nil
	case pattern.FieldContext:
		m.ClearContext()
		return nil
	case pattern.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	case pattern.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Pattern nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatternMutation) ResetField(name string) error {
	switch name {
	case pattern.FieldPatternType:
		m.ResetPatternType()
		return nil
	case pattern.FieldDomain:
		m.ResetDomain()
		return nil
	case pattern.FieldDescription:
		m.ResetDescription()
		return nil
	case pattern.FieldAction:
		m.ResetAction()
		return nil
	case pattern.FieldOutcome:
		m.ResetOutcome()
		return nil
	case pattern.FieldContext:
		m.ResetContext()
		return nil
	case pattern.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case pattern.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case pattern.FieldMetadata:
		m.ResetMetadata()
		return nil
	case pattern.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Pattern field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatternMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.observations != nil {
		edges = append(edges, pattern.EdgeObservations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatternMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pattern.EdgeObservations:
		ids := make([]ent.Value, 0, len(m.observations))
		for id := range m.observations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatternMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedobservations != nil {
		edges = append(edges, pattern.EdgeObservations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatternMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case pattern.EdgeObservations:
		ids := make([]ent.Value, 0, len(m.removedobservations))
		for id := range m.removedobservations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatternMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedobservations {
		edges = append(edges, pattern.EdgeObservations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatternMutation) EdgeCleared(name string) bool {
	switch name {
	case pattern.EdgeObservations:
		return m.clearedobservations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatternMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Pattern unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatternMutation) ResetEdge(name string) error {
	switch name {
	case pattern.EdgeObservations:
		m.ResetObservations()
		return nil
	}
	return fmt.Errorf("unknown Pattern edge %s", name)
}

// PatternObservationMutation represents an operation that mutates the PatternObservation nodes in the graph.
type PatternObservationMutation struct {
	config
	op                Op
	typ               string
	id                *string
	session_id        *string
	success_rating    *int
	addsuccess_rating *int
	feedback          *string
	observed_at       *time.Time
	clearedFields     map[string]struct{}
	pattern           *string
	clearedpattern    bool
	done              bool
	oldValue          func(context.Context) (*PatternObservation, error)
	predicates        []predicate.PatternObservation
}

var _ ent.Mutation = (*PatternObservationMutation)(nil)

// patternobservationOption allows management of the mutation configuration using functional options.
type patternobservationOption func(*PatternObservationMutation)

// newPatternObservationMutation creates new mutation for the PatternObservation entity.
func newPatternObservationMutation(c config, op Op, opts ...patternobservationOption) *PatternObservationMutation {
	m := &PatternObservationMutation{
		config:        c,
		op:            op,
		typ:           TypePatternObservation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatternObservationID sets the ID field of the mutation.
func withPatternObservationID(id string) patternobservationOption {
	return func(m *PatternObservationMutation) {
		var (
			err   error
			once  sync.Once
			value *PatternObservation
		)
		m.oldValue = func(ctx context.Context) (*PatternObservation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PatternObservation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatternObservation sets the old PatternObservation of the mutation.
func withPatternObservation(node *PatternObservation) patternobservationOption {
	return func(m *PatternObservationMutation) {
		m.oldValue = func(context.Context) (*PatternObservation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatternObservationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatternObservationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PatternObservation entities.
func (m *PatternObservationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatternObservationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatternObservationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PatternObservation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPatternID sets the "pattern_id" field.
func (m *PatternObservationMutation) SetPatternID(s string) {
	m.pattern = &s
}

// PatternID returns the value of the "pattern_id" field in the mutation.
func (m *PatternObservationMutation) PatternID() (r string, exists bool) {
	v := m.pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldPatternID returns the old "pattern_id" field's value of the PatternObservation entity.
// If the PatternObservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternObservationMutation) OldPatternID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatternID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatternID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatternID: %w", err)
	}
	return oldValue.PatternID, nil
}

// ResetPatternID resets all changes to the "pattern_id" field.
func (m *PatternObservationMutation) ResetPatternID() {
	m.pattern = nil
}

// SetSessionID sets the "session_id" field.
func (m *PatternObservationMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *PatternObservationMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the PatternObservation entity.
// If the PatternObservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternObservationMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *PatternObservationMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[patternobservation.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *PatternObservationMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[patternobservation.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *PatternObservationMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, patternobservation.FieldSessionID)
}

// SetSuccessRating sets the "success_rating" field.
func (m *PatternObservationMutation) SetSuccessRating(i int) {
	m.success_rating = &i
	m.addsuccess_rating = nil
}

// SuccessRating returns the value of the "success_rating" field in the mutation.
func (m *PatternObservationMutation) SuccessRating() (r int, exists bool) {
	v := m.success_rating
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessRating returns the old "success_rating" field's value of the PatternObservation entity.
// If the PatternObservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternObservationMutation) OldSuccessRating(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessRating: %w", err)
	}
	return oldValue.SuccessRating, nil
}

// AddSuccessRating adds i to the "success_rating" field.
func (m *PatternObservationMutation) AddSuccessRating(i int) {
	if m.addsuccess_rating != nil {
		*m.addsuccess_rating += i
	} else {
		m.addsuccess_rating = &i
	}
}

// AddedSuccessRating returns the value that was added to the "success_rating" field in this mutation.
func (m *PatternObservationMutation) AddedSuccessRating() (r int, exists bool) {
	v := m.addsuccess_rating
	if v == nil {
		return
	}
	return *v, true
}

// ClearSuccessRating clears the value of the "success_rating" field.
func (m *PatternObservationMutation) ClearSuccessRating() {
	m.success_rating = nil
	m.addsuccess_rating = nil
	m.clearedFields[patternobservation.FieldSuccessRating] = struct{}{}
}

// SuccessRatingCleared returns if the "success_rating" field was cleared in this mutation.
func (m *PatternObservationMutation) SuccessRatingCleared() bool {
	_, ok := m.clearedFields[patternobservation.FieldSuccessRating]
	return ok
}

// ResetSuccessRating resets all changes to the "success_rating" field.
func (m *PatternObservationMutation) ResetSuccessRating() {
	m.success_rating = nil
	m.addsuccess_rating = nil
	delete(m.clearedFields, patternobservation.FieldSuccessRating)
}

// SetFeedback sets the "feedback" field.
func (m *PatternObservationMutation) SetFeedback(s string) {
	m.feedback = &s
}

// Feedback returns the value of the "feedback" field in the mutation.
func (m *PatternObservationMutation) Feedback() (r string, exists bool) {
	v := m.feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedback returns the old "feedback" field's value of the PatternObservation entity.
// If the PatternObservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternObservationMutation) OldFeedback(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedback: %w", err)
	}
	return oldValue.Feedback, nil
}

// ClearFeedback clears the value of the "feedback" field.
func (m *PatternObservationMutation) ClearFeedback() {
	m.feedback = nil
	m.clearedFields[patternobservation.FieldFeedback] = struct{}{}
}

// FeedbackCleared returns if the "feedback" field was cleared in this mutation.
func (m *PatternObservationMutation) FeedbackCleared() bool {
	_, ok := m.clearedFields[patternobservation.FieldFeedback]
	return ok
}

// ResetFeedback resets all changes to the "feedback" field.
func (m *PatternObservationMutation) ResetFeedback() {
	m.feedback = nil
	delete(m.clearedFields, patternobservation.FieldFeedback)
}

// SetObservedAt sets the "observed_at" field.
func (m *PatternObservationMutation) SetObservedAt(t time.Time) {
	m.observed_at = &t
}

// ObservedAt returns the value of the "observed_at" field in the mutation.
func (m *PatternObservationMutation) ObservedAt() (r time.Time, exists bool) {
	v := m.observed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldObservedAt returns the old "observed_at" field's value of the PatternObservation entity.
// If the PatternObservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternObservationMutation) OldObservedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObservedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObservedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObservedAt: %w", err)
	}
	return oldValue.ObservedAt, nil
}

// ResetObservedAt resets all changes to the "observed_at" field.
func (m *PatternObservationMutation) ResetObservedAt() {
	m.observed_at = nil
}

// ClearPattern clears the "pattern" edge to the Pattern entity.
func (m *PatternObservationMutation) ClearPattern() {
	m.clearedpattern = true
	m.clearedFields[patternobservation.FieldPatternID] = struct{}{}
}

// PatternCleared reports if the "pattern" edge to the Pattern entity was cleared.
func (m *PatternObservationMutation) PatternCleared() bool {
	return m.clearedpattern
}

// PatternIDs returns the "pattern" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatternID instead. It exists only for internal usage by the builders.
func (m *PatternObservationMutation) PatternIDs() (ids []string) {
	if id := m.pattern; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPattern resets all changes to the "pattern" edge.
func (m *PatternObservationMutation) ResetPattern() {
	m.pattern = nil
	m.clearedpattern = false
}

// Where appends a list predicates to the PatternObservationMutation builder.
func (m *PatternObservationMutation) Where(ps ...predicate.PatternObservation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatternObservationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatternObservationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PatternObservation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatternObservationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatternObservationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PatternObservation).
func (m *PatternObservationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatternObservationMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.pattern != nil {
		fields = append(fields, patternobservation.FieldPatternID)
	}
	if m.session_id != nil {
		fields = append(fields, patternobservation.FieldSessionID)
	}
	if m.success_rating != nil {
		fields = append(fields, patternobservation.FieldSuccessRating)
	}
	if m.feedback != nil {
		fields = append(fields, patternobservation.FieldFeedback)
	}
	if m.observed_at != nil {
		fields = append(fields, patternobservation.FieldObservedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatternObservationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patternobservation.FieldPatternID:
		return m.PatternID()
	case patternobservation.FieldSessionID:
		return m.SessionID()
	case patternobservation.FieldSuccessRating:
		return m.SuccessRating()
	case patternobservation.FieldFeedback:
		return m.Feedback()
	case patternobservation.FieldObservedAt:
		return m.ObservedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatternObservationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patternobservation.FieldPatternID:
		return m.OldPatternID(ctx)
	case patternobservation.FieldSessionID:
		return m.OldSessionID(ctx)
	case patternobservation.FieldSuccessRating:
		return m.OldSuccessRating(ctx)
	case patternobservation.FieldFeedback:
		return m.OldFeedback(ctx)
	case patternobservation.FieldObservedAt:
		return m.OldObservedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PatternObservation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatternObservationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patternobservation.FieldPatternID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatternID(v)
		return nil
	case patternobservation.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case patternobservation.FieldSuccessRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessRating(v)
		return nil
	case patternobservation.FieldFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedback(v)
		return nil
	case patternobservation.FieldObservedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObservedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PatternObservation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatternObservationMutation) AddedFields() []string {
	var fields []string
	if m.addsuccess_rating != nil {
		fields = append(fields, patternobservation.FieldSuccessRating)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatternObservationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case patternobservation.FieldSuccessRating:
		return m.AddedSuccessRating()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatternObservationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case patternobservation.FieldSuccessRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccessRating(v)
		return nil
	}
	return fmt.Errorf("unknown PatternObservation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatternObservationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patternobservation.FieldSessionID) {
		fields = append(fields, patternobservation.FieldSessionID)
	}
	if m.FieldCleared(patternobservation.FieldSuccessRating) {
		fields = append(fields, patternobservation.FieldSuccessRating)
	}
	if m.FieldCleared(patternobservation.FieldFeedback) {
		fields = append(fields, patternobservation.FieldFeedback)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatternObservationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatternObservationMutation) ClearField(name string) error {
	switch name {
	case patternobservation.FieldSessionID:
		m.ClearSessionID()
		return nil
	case patternobservation.FieldSuccessRating:
		m.ClearSuccessRating()
		return nil
	case patternobservation.FieldFeedback:
		m.ClearFeedback()
		return nil
	}
	return fmt.Errorf("unknown PatternObservation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatternObservationMutation) ResetField(name string) error {
	switch name {
	case patternobservation.FieldPatternID:
		m.ResetPatternID()
		return nil
	case patternobservation.FieldSessionID:
		m.ResetSessionID()
		return nil
	case patternobservation.FieldSuccessRating:
		m.ResetSuccessRating()
		return nil
	case patternobservation.FieldFeedback:
		m.ResetFeedback()
		return nil
	case patternobservation.FieldObservedAt:
		m.ResetObservedAt()
		return nil
	}
	return fmt.Errorf("unknown PatternObservation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatternObservationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.pattern != nil {
		edges = append(edges, patternobservation.EdgePattern)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatternObservationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case patternobservation.EdgePattern:
		if id := m.pattern; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatternObservationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatternObservationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatternObservationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpattern {
		edges = append(edges, patternobservation.EdgePattern)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatternObservationMutation) EdgeCleared(name string) bool {
	switch name {
	case patternobservation.EdgePattern:
		return m.clearedpattern
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatternObservationMutation) ClearEdge(name string) error {
	switch name {
	case patternobservation.EdgePattern:
		m.ClearPattern()
		return nil
	}
	return fmt.Errorf("unknown PatternObservation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatternObservationMutation) ResetEdge(name string) error {
	switch name {
	case patternobservation.EdgePattern:
		m.ResetPattern()
		return nil
	}
	return fmt.Errorf("unknown PatternObservation edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op            Op
	typ           string
	id            *string
	title         *string
	description   *string
	docs          *map[string]interface{}
	archived      *bool
	archived_at   *time.Time
	metadata      *map[string]interface{}
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	tasks         map[string]struct{}
	removedtasks  map[string]struct{}
	clearedtasks  bool
	done          bool
	oldValue      func(context.Context) (*Project, error)
	predicates    []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *ProjectMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ProjectMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ProjectMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *ProjectMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProjectMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ProjectMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[project.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ProjectMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[project.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ProjectMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, project.FieldDescription)
}

// SetDocs sets the "docs" field.
func (m *ProjectMutation) SetDocs(value map[string]interface{}) {
	m.docs = &value
}

// Docs returns the value of the "docs" field in the mutation.
func (m *ProjectMutation) Docs() (r map[string]interface{}, exists bool) {
	v := m.docs
	if v == nil {
		return
	}
	return *v, true
}

// OldDocs returns the old "docs" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDocs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocs: %w", err)
	}
	return oldValue.Docs, nil
}

// ClearDocs clears the value of the "docs" field.
func (m *ProjectMutation) ClearDocs() {
	m.docs = nil
	m.clearedFields[project.FieldDocs] = struct{}{}
}

// DocsCleared returns if the "docs" field was cleared in this mutation.
func (m *ProjectMutation) DocsCleared() bool {
	_, ok := m.clearedFields[project.FieldDocs]
	return ok
}

// ResetDocs resets all changes to the "docs" field.
func (m *ProjectMutation) ResetDocs() {
	m.docs = nil
	delete(m.clearedFields, project.FieldDocs)
}

// SetArchived sets the "archived" field.
func (m *ProjectMutation) SetArchived(b bool) {
	m.archived = &b
}

// Archived returns the value of the "archived" field in the mutation.
func (m *ProjectMutation) Archived() (r bool, exists bool) {
	v := m.archived
	if v == nil {
		return
	}
	return *v, true
}

// OldArchived returns the old "archived" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldArchived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchived: %w", err)
	}
	return oldValue.Archived, nil
}

// ResetArchived resets all changes to the "archived" field.
func (m *ProjectMutation) ResetArchived() {
	m.archived = nil
}

// SetArchivedAt sets the "archived_at" field.
func (m *ProjectMutation) SetArchivedAt(t time.Time) {
	m.archived_at = &t
}

// ArchivedAt returns the value of the "archived_at" field in the mutation.
func (m *ProjectMutation) ArchivedAt() (r time.Time, exists bool) {
	v := m.archived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedAt returns the old "archived_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldArchivedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedAt: %w", err)
	}
	return oldValue.ArchivedAt, nil
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (m *ProjectMutation) ClearArchivedAt() {
	m.archived_at = nil
	m.clearedFields[project.FieldArchivedAt] = struct{}{}
}

// ArchivedAtCleared returns if the "archived_at" field was cleared in this mutation.
func (m *ProjectMutation) ArchivedAtCleared() bool {
	_, ok := m.clearedFields[project.FieldArchivedAt]
	return ok
}

// ResetArchivedAt resets all changes to the "archived_at" field.
func (m *ProjectMutation) ResetArchivedAt() {
	m.archived_at = nil
	delete(m.clearedFields, project.FieldArchivedAt)
}

// SetMetadata sets the "metadata" field.
func (m *ProjectMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ProjectMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ProjectMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[project.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ProjectMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[project.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ProjectMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, project.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *ProjectMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *ProjectMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *ProjectMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *ProjectMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *ProjectMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *ProjectMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *ProjectMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.title != nil {
		fields = append(fields, project.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, project.FieldDescription)
	}
	if m.docs != nil {
		fields = append(fields, project.FieldDocs)
	}
	if m.archived != nil {
		fields = append(fields, project.FieldArchived)
	}
	if m.archived_at != nil {
		fields = append(fields, project.FieldArchivedAt)
	}
	if m.metadata != nil {
		fields = append(fields, project.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldTitle:
		return m.Title()
	case project.FieldDescription:
		return m.Description()
	case project.FieldDocs:
		return m.Docs()
	case project.FieldArchived:
		return m.Archived()
	case project.FieldArchivedAt:
		return m.ArchivedAt()
	case project.FieldMetadata:
		return m.Metadata()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldTitle:
		return m.OldTitle(ctx)
	case project.FieldDescription:
		return m.OldDescription(ctx)
	case project.FieldDocs:
		return m.OldDocs(ctx)
	case project.FieldArchived:
		return m.OldArchived(ctx)
	case project.FieldArchivedAt:
		return m.OldArchivedAt(ctx)
	case project.FieldMetadata:
		return m.OldMetadata(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case project.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case project.FieldDocs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocs(v)
		return nil
	case project.FieldArchived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchived(v)
		return nil
	case project.FieldArchivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedAt(v)
		return nil
	case project.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldDescription) {
		fields = append(fields, project.FieldDescription)
	}
	if m.FieldCleared(project.FieldDocs) {
		fields = append(fields, project.FieldDocs)
	}
	if m.FieldCleared(project.FieldArchivedAt) {
		fields = append(fields, project.FieldArchivedAt)
	}
	if m.FieldCleared(project.FieldMetadata) {
		fields = append(fields, project.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldDescription:
		m.ClearDescription()
		return nil
	case project.FieldDocs:
		m.ClearDocs()
		return nil
	case project.FieldArchivedAt:
		m.ClearArchivedAt()
		return nil
	case project.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldTitle:
		m.ResetTitle()
		return nil
	case project.FieldDescription:
		m.ResetDescription()
		return nil
	case project.FieldDocs:
		m.ResetDocs()
		return nil
	case project.FieldArchived:
		m.ResetArchived()
		return nil
	case project.FieldArchivedAt:
		m.ResetArchivedAt()
		return nil
	case project.FieldMetadata:
		m.ResetMetadata()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tasks != nil {
		edges = append(edges, project.EdgeTasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtasks != nil {
		edges = append(edges, project.EdgeTasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtasks {
		edges = append(edges, project.EdgeTasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeTasks:
		return m.clearedtasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeTasks:
		m.ResetTasks()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op              Op
	typ             string
	id              *string
	agent_name      *string
	project_id      *string
	started_at      *time.Time
	ended_at        *time.Time
	summary         *string
	context         *map[string]interface{}
	embedding       *pgvector.Vector
	metadata        *map[string]interface{}
	created_at      *time.Time
	clearedFields   map[string]struct{}
	events          map[string]struct{}
	removedevents   map[string]struct{}
	clearedevents   bool
	messages        map[string]struct{}
	removedmessages map[string]struct{}
	clearedmessages bool
	handoffs        map[string]struct{}
	removedhandoffs map[string]struct{}
	clearedhandoffs bool
	done            bool
	oldValue        func(context.Context) (*Session, error)
	predicates      []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id string) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentName sets the "agent_name" field.
func (m *SessionMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *SessionMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *SessionMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetProjectID sets the "project_id" field.
func (m *SessionMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *SessionMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldProjectID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ClearProjectID clears the value of the "project_id" field.
func (m *SessionMutation) ClearProjectID() {
	m.project_id = nil
	m.clearedFields[session.FieldProjectID] = struct{}{}
}

// ProjectIDCleared returns if the "project_id" field was cleared in this mutation.
func (m *SessionMutation) ProjectIDCleared() bool {
	_, ok := m.clearedFields[session.FieldProjectID]
	return ok
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *SessionMutation) ResetProjectID() {
	m.project_id = nil
	delete(m.clearedFields, session.FieldProjectID)
}

// SetStartedAt sets the "started_at" field.
func (m *SessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *SessionMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *SessionMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *SessionMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[session.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *SessionMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *SessionMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, session.FieldEndedAt)
}

// SetSummary sets the "summary" field.
func (m *SessionMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *SessionMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *SessionMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[session.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *SessionMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[session.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *SessionMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, session.FieldSummary)
}

// SetContext sets the "context" field.
func (m *SessionMutation) SetContext(value map[string]interface{}) {
	m.context = &value
}

// Context returns the value of the "context" field in the mutation.
func (m *SessionMutation) Context() (r map[string]interface{}, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *SessionMutation) ClearContext() {
	m.context = nil
	m.clearedFields[session.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *SessionMutation) ContextCleared() bool {
	_, ok := m.clearedFields[session.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *SessionMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, session.FieldContext)
}

// SetEmbedding sets the "embedding" field.
func (m *SessionMutation) SetEmbedding(pg pgvector.Vector) {
	m.embedding = &pg
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *SessionMutation) Embedding() (r pgvector.Vector, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldEmbedding(ctx context.Context) (v *pgvector.Vector, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *SessionMutation) ClearEmbedding() {
	m.embedding = nil
	m.clearedFields[session.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *SessionMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[session.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *SessionMutation) ResetEmbedding() {
	m.embedding = nil
	delete(m.clearedFields, session.FieldEmbedding)
}

// SetMetadata sets the "metadata" field.
func (m *SessionMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *SessionMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *SessionMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[session.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *SessionMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[session.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *SessionMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, session.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddEventIDs adds the "events" edge to the SessionEvent entity by ids.
func (m *SessionMutation) AddEventIDs(ids ...string) {
	if m.events == nil {
		m.events = make(map[string]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the SessionEvent entity.
func (m *SessionMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the SessionEvent entity was cleared.
func (m *SessionMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the SessionEvent entity by IDs.
func (m *SessionMutation) RemoveEventIDs(ids ...string) {
	if m.removedevents == nil {
		m.removedevents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the SessionEvent entity.
func (m *SessionMutation) RemovedEventsIDs() (ids []string) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *SessionMutation) EventsIDs() (ids []string) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *SessionMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddMessageIDs adds the "messages" edge to the ConversationMessage entity by ids.
func (m *SessionMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the ConversationMessage entity.
func (m *SessionMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the ConversationMessage entity was cleared.
func (m *SessionMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the ConversationMessage entity by IDs.
func (m *SessionMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the ConversationMessage entity.
func (m *SessionMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *SessionMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *SessionMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddHandoffIDs adds the "handoffs" edge to the Handoff entity by ids.
func (m *SessionMutation) AddHandoffIDs(ids ...string) {
	if m.handoffs == nil {
		m.handoffs = make(map[string]struct{})
	}
	for i := range ids {
		m.handoffs[ids[i]] = struct{}{}
	}
}

// ClearHandoffs clears the "handoffs" edge to the Handoff entity.
func (m *SessionMutation) ClearHandoffs() {
	m.clearedhandoffs = true
}

// HandoffsCleared reports if the "handoffs" edge to the Handoff entity was cleared.
func (m *SessionMutation) HandoffsCleared() bool {
	return m.clearedhandoffs
}

// RemoveHandoffIDs removes the "handoffs" edge to the Handoff entity by IDs.
func (m *SessionMutation) RemoveHandoffIDs(ids ...string) {
	if m.removedhandoffs == nil {
		m.removedhandoffs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.handoffs, ids[i])
		m.removedhandoffs[ids[i]] = struct{}{}
	}
}

// RemovedHandoffs returns the removed IDs of the "handoffs" edge to the Handoff entity.
func (m *SessionMutation) RemovedHandoffsIDs() (ids []string) {
	for id := range m.removedhandoffs {
		ids = append(ids, id)
	}
	return
}

// HandoffsIDs returns the "handoffs" edge IDs in the mutation.
func (m *SessionMutation) HandoffsIDs() (ids []string) {
	for id := range m.handoffs {
		ids = append(ids, id)
	}
	return
}

// ResetHandoffs resets all changes to the "handoffs" edge.
func (m *SessionMutation) ResetHandoffs() {
	m.handoffs = nil
	m.clearedhandoffs = false
	m.removedhandoffs = nil
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.agent_name != nil {
		fields = append(fields, session.FieldAgentName)
	}
	if m.project_id != nil {
		fields = append(fields, session.FieldProjectID)
	}
	if m.started_at != nil {
		fields = append(fields, session.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, session.FieldEndedAt)
	}
	if m.summary != nil {
		fields = append(fields, session.FieldSummary)
	}
	if m.context != nil {
		fields = append(fields, session.FieldContext)
	}
	if m.embedding != nil {
		fields = append(fields, session.FieldEmbedding)
	}
	if m.metadata != nil {
		fields = append(fields, session.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldAgentName:
		return m.AgentName()
	case session.FieldProjectID:
		return m.ProjectID()
	case session.FieldStartedAt:
		return m.StartedAt()
	case session.FieldEndedAt:
		return m.EndedAt()
	case session.FieldSummary:
		return m.Summary()
	case session.FieldContext:
		return m.Context()
	case session.FieldEmbedding:
		return m.Embedding()
	case session.FieldMetadata:
		return m.Metadata()
	case session.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldAgentName:
		return m.OldAgentName(ctx)
	case session.FieldProjectID:
		return m.OldProjectID(ctx)
	case session.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case session.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case session.FieldSummary:
		return m.OldSummary(ctx)
	case session.FieldContext:
		return m.OldContext(ctx)
	case session.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case session.FieldMetadata:
		return m.OldMetadata(ctx)
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case session.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case session.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case session.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case session.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case session.FieldContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case session.FieldEmbedding:
		v, ok := value.(pgvector.Vector)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case session.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldProjectID) {
		fields = append(fields, session.FieldProjectID)
	}
	if m.FieldCleared(session.FieldEndedAt) {
		fields = append(fields, session.FieldEndedAt)
	}
	if m.FieldCleared(session.FieldSummary) {
		fields = append(fields, session.FieldSummary)
	}
	if m.FieldCleared(session.FieldContext) {
		fields = append(fields, session.FieldContext)
	}
	if m.FieldCleared(session.FieldEmbedding) {
		fields = append(fields, session.FieldEmbedding)
	}
	if m.FieldCleared(session.FieldMetadata) {
		fields = append(fields, session.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldProjectID:
		m.ClearProjectID()
		return nil
	case session.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case session.FieldSummary:
		m.ClearSummary()
		return nil
	case session.FieldContext:
		m.ClearContext()
		return nil
	case session.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	case session.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldAgentName:
		m.ResetAgentName()
		return nil
	case session.FieldProjectID:
		m.ResetProjectID()
		return nil
	case session.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case session.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case session.FieldSummary:
		m.ResetSummary()
		return nil
	case session.FieldContext:
		m.ResetContext()
		return nil
	case session.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case session.FieldMetadata:
		m.ResetMetadata()
		return nil
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.events != nil {
		edges = append(edges, session.EdgeEvents)
	}
	if m.messages != nil {
		edges = append(edges, session.EdgeMessages)
	}
	if m.handoffs != nil {
		edges = append(edges, session.EdgeHandoffs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeHandoffs:
		ids := make([]ent.Value, 0, len(m.handoffs))
		for id := range m.handoffs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedevents != nil {
		edges = append(edges, session.EdgeEvents)
	}
	if m.removedmessages != nil {
		edges = append(edges, session.EdgeMessages)
	}
	if m.removedhandoffs != nil {
		edges = append(edges, session.EdgeHandoffs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeHandoffs:
		ids := make([]ent.Value, 0, len(m.removedhandoffs))
		for id := range m.removedhandoffs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedevents {
		edges = append(edges, session.EdgeEvents)
	}
	if m.clearedmessages {
		edges = append(edges, session.EdgeMessages)
	}
	if m.clearedhandoffs {
		edges = append(edges, session.EdgeHandoffs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	switch name {
	case session.EdgeEvents:
		return m.clearedevents
	case session.EdgeMessages:
		return m.clearedmessages
	case session.EdgeHandoffs:
		return m.clearedhandoffs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	switch name {
	case session.EdgeEvents:
		m.ResetEvents()
		return nil
	case session.EdgeMessages:
		m.ResetMessages()
		return nil
	case session.EdgeHandoffs:
		m.ResetHandoffs()
		return nil
	}
	return fmt.Errorf("unknown Session edge %s", name)
}

// SessionEventMutation represents an operation that mutates the SessionEvent nodes in the graph.
type SessionEventMutation struct {
	config
	op             Op
	typ            string
	id             *string
	seq            *int64
	addseq         *int64
	event_type     *string
	timestamp      *time.Time
	payload        *map[string]interface{}
	embedding      *pgvector.Vector
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*SessionEvent, error)
	predicates     []predicate.SessionEvent
}

var _ ent.Mutation = (*SessionEventMutation)(nil)

// sessioneventOption allows management of the mutation configuration using functional options.
type sessioneventOption func(*SessionEventMutation)

// newSessionEventMutation creates new mutation for the SessionEvent entity.
func newSessionEventMutation(c config, op Op, opts ...sessioneventOption) *SessionEventMutation {
	m := &SessionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionEventID sets the ID field of the mutation.
func withSessionEventID(id string) sessioneventOption {
	return func(m *SessionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionEvent
		)
		m.oldValue = func(ctx context.Context) (*SessionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionEvent sets the old SessionEvent of the mutation.
func withSessionEvent(node *SessionEvent) sessioneventOption {
	return func(m *SessionEventMutation) {
		m.oldValue = func(context.Context) (*SessionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SessionEvent entities.
func (m *SessionEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *SessionEventMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionEventMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionEventMutation) ResetSessionID() {
	m.session = nil
}

// SetSeq sets the "seq" field.
func (m *SessionEventMutation) SetSeq(i int64) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *SessionEventMutation) Seq() (r int64, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSeq(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *SessionEventMutation) AddSeq(i int64) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *SessionEventMutation) AddedSeq() (r int64, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ClearSeq clears the value of the "seq" field.
func (m *SessionEventMutation) ClearSeq() {
	m.seq = nil
	m.addseq = nil
	m.clearedFields[sessionevent.FieldSeq] = struct{}{}
}

// SeqCleared returns if the "seq" field was cleared in this mutation.
func (m *SessionEventMutation) SeqCleared() bool {
	_, ok := m.clearedFields[sessionevent.FieldSeq]
	return ok
}

// ResetSeq resets all changes to the "seq" field.
func (m *SessionEventMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
	delete(m.clearedFields, sessionevent.FieldSeq)
}

// SetEventType sets the "event_type" field.
func (m *SessionEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *SessionEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *SessionEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SessionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SessionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SessionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetPayload sets the "payload" field.
func (m *SessionEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *SessionEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *SessionEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[sessionevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *SessionEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[sessionevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *SessionEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, sessionevent.FieldPayload)
}

// SetEmbedding sets the "embedding" field.
func (m *SessionEventMutation) SetEmbedding(pg pgvector.Vector) {
	m.embedding = &pg
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *SessionEventMutation) Embedding() (r pgvector.Vector, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldEmbedding(ctx context.Context) (v *pgvector.Vector, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *SessionEventMutation) ClearEmbedding() {
	m.embedding = nil
	m.clearedFields[sessionevent.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *SessionEventMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[sessionevent.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *SessionEventMutation) ResetEmbedding() {
	m.embedding = nil
	delete(m.clearedFields, sessionevent.FieldEmbedding)
}

// ClearSession clears the "session" edge to the Session entity.
func (m *SessionEventMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[sessionevent.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *SessionEventMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *SessionEventMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *SessionEventMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the SessionEventMutation builder.
func (m *SessionEventMutation) Where(ps ...predicate.SessionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionEvent).
func (m *SessionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.session != nil {
		fields = append(fields, sessionevent.FieldSessionID)
	}
	if m.seq != nil {
		fields = append(fields, sessionevent.FieldSeq)
	}
	if m.event_type != nil {
		fields = append(fields, sessionevent.FieldEventType)
	}
	if m.timestamp != nil {
		fields = append(fields, sessionevent.FieldTimestamp)
	}
	if m.payload != nil {
		fields = append(fields, sessionevent.FieldPayload)
	}
	if m.embedding != nil {
		fields = append(fields, sessionevent.FieldEmbedding)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSessionID:
		return m.SessionID()
	case sessionevent.FieldSeq:
		return m.Seq()
	case sessionevent.FieldEventType:
		return m.EventType()
	case sessionevent.FieldTimestamp:
		return m.Timestamp()
	case sessionevent.FieldPayload:
		return m.Payload()
	case sessionevent.FieldEmbedding:
		return m.Embedding()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionevent.FieldSeq:
		return m.OldSeq(ctx)
	case sessionevent.FieldEventType:
		return m.OldEventType(ctx)
	case sessionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case sessionevent.FieldPayload:
		return m.OldPayload(ctx)
	case sessionevent.FieldEmbedding:
		return m.OldEmbedding(ctx)
	}
	return nil, fmt.Errorf("unknown SessionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionevent.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case sessionevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case sessionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case sessionevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case sessionevent.FieldEmbedding:
		v, ok := value.(pgvector.Vector)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionEventMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, sessionevent.FieldSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSeq:
		return m.AddedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionevent.FieldSeq) {
		fields = append(fields, sessionevent.FieldSeq)
	}
	if m.FieldCleared(sessionevent.FieldPayload) {
		fields = append(fields, sessionevent.FieldPayload)
	}
	if m.FieldCleared(sessionevent.FieldEmbedding) {
		fields = append(fields, sessionevent.FieldEmbedding)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionEventMutation) ClearField(name string) error {
	switch name {
	case sessionevent.FieldSeq:
		m.ClearSeq()
		return nil
	case sessionevent.FieldPayload:
		m.ClearPayload()
		return nil
	case sessionevent.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionEventMutation) ResetField(name string) error {
	switch name {
	case sessionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionevent.FieldSeq:
		m.ResetSeq()
		return nil
	case sessionevent.FieldEventType:
		m.ResetEventType()
		return nil
	case sessionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case sessionevent.FieldPayload:
		m.ResetPayload()
		return nil
	case sessionevent.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, sessionevent.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sessionevent.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, sessionevent.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionEventMutation) EdgeCleared(name string) bool {
	switch name {
	case sessionevent.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionEventMutation) ClearEdge(name string) error {
	switch name {
	case sessionevent.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionEventMutation) ResetEdge(name string) error {
	switch name {
	case sessionevent.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent edge %s", name)
}

// SharedContextMutation represents an operation that mutates the SharedContext nodes in the graph.
type SharedContextMutation struct {
	config
	op            Op
	typ           string
	id            *string
	key           *string
	value         *map[string]interface{}
	set_by        *string
	session_id    *string
	expires_at    *time.Time
	updated_at    *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SharedContext, error)
	predicates    []predicate.SharedContext
}

var _ ent.Mutation = (*SharedContextMutation)(nil)

// sharedcontextOption allows management of the mutation configuration using functional options.
type sharedcontextOption func(*SharedContextMutation)

// newSharedContextMutation creates new mutation for the SharedContext entity.
func newSharedContextMutation(c config, op Op, opts ...sharedcontextOption) *SharedContextMutation {
	m := &SharedContextMutation{
		config:        c,
		op:            op,
		typ:           TypeSharedContext,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSharedContextID sets the ID field of the mutation.
func withSharedContextID(id string) sharedcontextOption {
	return func(m *SharedContextMutation) {
		var (
			err   error
			once  sync.Once
			value *SharedContext
		)
		m.oldValue = func(ctx context.Context) (*SharedContext, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SharedContext.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSharedContext sets the old SharedContext of the mutation.
func withSharedContext(node *SharedContext) sharedcontextOption {
	return func(m *SharedContextMutation) {
		m.oldValue = func(context.Context) (*SharedContext, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SharedContextMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SharedContextMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SharedContext entities.
func (m *SharedContextMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SharedContextMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SharedContextMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SharedContext.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *SharedContextMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *SharedContextMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the SharedContext entity.
// If the SharedContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SharedContextMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *SharedContextMutation) ResetKey() {
	m.key = nil
}

// SetValue sets the "value" field.
func (m *SharedContextMutation) SetValue(value map[string]interface{}) {
	m.value = &value
}

// Value returns the value of the "value" field in the mutation.
func (m *SharedContextMutation) Value() (r map[string]interface{}, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the SharedContext entity.
// If the SharedContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SharedContextMutation) OldValue(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *SharedContextMutation) ResetValue() {
	m.value = nil
}

// SetSetBy sets the "set_by" field.
func (m *SharedContextMutation) SetSetBy(s string) {
	m.set_by = &s
}

// SetBy returns the value of the "set_by" field in the mutation.
func (m *SharedContextMutation) SetBy() (r string, exists bool) {
	v := m.set_by
	if v == nil {
		return
	}
	return *v, true
}

// OldSetBy returns the old "set_by" field's value of the SharedContext entity.
// If the SharedContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SharedContextMutation) OldSetBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSetBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSetBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSetBy: %w", err)
	}
	return oldValue.SetBy, nil
}

// ResetSetBy resets all changes to the "set_by" field.
func (m *SharedContextMutation) ResetSetBy() {
	m.set_by = nil
}

// SetSessionID sets the "session_id" field.
func (m *SharedContextMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SharedContextMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SharedContext entity.
// If the SharedContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SharedContextMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *SharedContextMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[sharedcontext.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *SharedContextMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[sharedcontext.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SharedContextMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, sharedcontext.FieldSessionID)
}

// SetExpiresAt sets the "expires_at" field.
func (m *SharedContextMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *SharedContextMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the SharedContext entity.
// If the SharedContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SharedContextMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *SharedContextMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[sharedcontext.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *SharedContextMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[sharedcontext.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *SharedContextMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, sharedcontext.FieldExpiresAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SharedContextMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SharedContextMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SharedContext entity.
// If the SharedContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SharedContextMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SharedContextMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SharedContextMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SharedContextMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SharedContext entity.
// If the SharedContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SharedContextMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SharedContextMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SharedContextMutation builder.
func (m *SharedContextMutation) Where(ps ...predicate.SharedContext) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SharedContextMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SharedContextMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SharedContext, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SharedContextMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SharedContextMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SharedContext).
func (m *SharedContextMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SharedContextMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.key != nil {
		fields = append(fields, sharedcontext.FieldKey)
	}
	if m.value != nil {
		fields = append(fields, sharedcontext.FieldValue)
	}
	if m.set_by != nil {
		fields = append(fields, sharedcontext.FieldSetBy)
	}
	if m.session_id != nil {
		fields = append(fields, sharedcontext.FieldSessionID)
	}
	if m.expires_at != nil {
		fields = append(fields, sharedcontext.FieldExpiresAt)
	}
	if m.updated_at != nil {
		fields = append(fields, sharedcontext.FieldUpdatedAt)
	}
	if m.created_at != nil {
		fields = append(fields, sharedcontext.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SharedContextMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sharedcontext.FieldKey:
		return m.Key()
	case sharedcontext.FieldValue:
		return m.Value()
	case sharedcontext.FieldSetBy:
		return m.SetBy()
	case sharedcontext.FieldSessionID:
		return m.SessionID()
	case sharedcontext.FieldExpiresAt:
		return m.ExpiresAt()
	case sharedcontext.FieldUpdatedAt:
		return m.UpdatedAt()
	case sharedcontext.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SharedContextMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sharedcontext.FieldKey:
		return m.OldKey(ctx)
	case sharedcontext.FieldValue:
		return m.OldValue(ctx)
	case sharedcontext.FieldSetBy:
		return m.OldSetBy(ctx)
	case sharedcontext.FieldSessionID:
		return m.OldSessionID(ctx)
	case sharedcontext.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case sharedcontext.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case sharedcontext.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SharedContext field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SharedContextMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sharedcontext.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case sharedcontext.FieldValue:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case sharedcontext.FieldSetBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSetBy(v)
		return nil
	case sharedcontext.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sharedcontext.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case sharedcontext.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case sharedcontext.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SharedContext field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SharedContextMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SharedContextMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SharedContextMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SharedContext numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SharedContextMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sharedcontext.FieldSessionID) {
		fields = append(fields, sharedcontext.FieldSessionID)
	}
	if m.FieldCleared(sharedcontext.FieldExpiresAt) {
		fields = append(fields, sharedcontext.FieldExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SharedContextMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SharedContextMutation) ClearField(name string) error {
	switch name {
	case sharedcontext.FieldSessionID:
		m.ClearSessionID()
		return nil
	case sharedcontext.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown SharedContext nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SharedContextMutation) ResetField(name string) error {
	switch name {
	case sharedcontext.FieldKey:
		m.ResetKey()
		return nil
	case sharedcontext.FieldValue:
		m.ResetValue()
		return nil
	case sharedcontext.FieldSetBy:
		m.ResetSetBy()
		return nil
	case sharedcontext.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sharedcontext.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case sharedcontext.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case sharedcontext.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SharedContext field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SharedContextMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SharedContextMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SharedContextMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SharedContextMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SharedContextMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SharedContextMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SharedContextMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SharedContext unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SharedContextMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SharedContext edge %s", name)
}

// SharedContextHistoryMutation represents an operation that mutates the SharedContextHistory nodes in the graph.
type SharedContextHistoryMutation struct {
	config
	op            Op
	typ           string
	id            *string
	key           *string
	old_value     *map[string]interface{}
	new_value     *map[string]interface{}
	changed_by    *string
	changed_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SharedContextHistory, error)
	predicates    []predicate.SharedContextHistory
}

var _ ent.Mutation = (*SharedContextHistoryMutation)(nil)

// sharedcontexthistoryOption allows management of the mutation configuration using functional options.
type sharedcontexthistoryOption func(*SharedContextHistoryMutation)

// newSharedContextHistoryMutation creates new mutation for the SharedContextHistory entity.
func newSharedContextHistoryMutation(c config, op Op, opts ...sharedcontexthistoryOption) *SharedContextHistoryMutation {
	m := &SharedContextHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeSharedContextHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSharedContextHistoryID sets the ID field of the mutation.
func withSharedContextHistoryID(id string) sharedcontexthistoryOption {
	return func(m *SharedContextHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *SharedContextHistory
		)
		m.oldValue = func(ctx context.Context) (*SharedContextHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SharedContextHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSharedContextHistory sets the old SharedContextHistory of the mutation.
func withSharedContextHistory(node *SharedContextHistory) sharedcontexthistoryOption {
	return func(m *SharedContextHistoryMutation) {
		m.oldValue = func(context.Context) (*SharedContextHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SharedContextHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SharedContextHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SharedContextHistory entities.
func (m *SharedContextHistoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SharedContextHistoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SharedContextHistoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SharedContextHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *SharedContextHistoryMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *SharedContextHistoryMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the SharedContextHistory entity.
// If the SharedContextHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SharedContextHistoryMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *SharedContextHistoryMutation) ResetKey() {
	m.key = nil
}

// SetOldValue sets the "old_value" field.
func (m *SharedContextHistoryMutation) SetOldValue(value map[string]interface{}) {
	m.old_value = &value
}

// OldValue returns the value of the "old_value" field in the mutation.
func (m *SharedContextHistoryMutation) OldValue() (r map[string]interface{}, exists bool) {
	v := m.old_value
	if v == nil {
		return
	}
	return *v, true
}

// OldOldValue returns the old "old_value" field's value of the SharedContextHistory entity.
// If the SharedContextHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SharedContextHistoryMutation) OldOldValue(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOldValue: %w", err)
	}
	return oldValue.OldValue, nil
}

// ClearOldValue clears the value of the "old_value" field.
func (m *SharedContextHistoryMutation) ClearOldValue() {
	m.old_value = nil
	m.clearedFields[sharedcontexthistory.FieldOldValue] = struct{}{}
}

// OldValueCleared returns if the "old_value" field was cleared in this mutation.
func (m *SharedContextHistoryMutation) OldValueCleared() bool {
	_, ok := m.clearedFields[sharedcontexthistory.FieldOldValue]
	return ok
}

// ResetOldValue resets all changes to the "old_value" field.
func (m *SharedContextHistoryMutation) ResetOldValue() {
	m.old_value = nil
	delete(m.clearedFields, sharedcontexthistory.FieldOldValue)
}

// SetNewValue sets the "new_value" field.
func (m *SharedContextHistoryMutation) SetNewValue(value map[string]interface{}) {
	m.new_value = &value
}

// NewValue returns the value of the "new_value" field in the mutation.
func (m *SharedContextHistoryMutation) NewValue() (r map[string]interface{}, exists bool) {
	v := m.new_value
	if v == nil {
		return
	}
	return *v, true
}

// OldNewValue returns the old "new_value" field's value of the SharedContextHistory entity.
// If the SharedContextHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SharedContextHistoryMutation) OldNewValue(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewValue: %w", err)
	}
	return oldValue.NewValue, nil
}

// ResetNewValue resets all changes to the "new_value" field.
func (m *SharedContextHistoryMutation) ResetNewValue() {
	m.new_value = nil
}

// SetChangedBy sets the "changed_by" field.
func (m *SharedContextHistoryMutation) SetChangedBy(s string) {
	m.changed_by = &s
}

// ChangedBy returns the value of the "changed_by" field in the mutation.
func (m *SharedContextHistoryMutation) ChangedBy() (r string, exists bool) {
	v := m.changed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldChangedBy returns the old "changed_by" field's value of the SharedContextHistory entity.
// If the SharedContextHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SharedContextHistoryMutation) OldChangedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangedBy: %w", err)
	}
	return oldValue.ChangedBy, nil
}

// ResetChangedBy resets all changes to the "changed_by" field.
func (m *SharedContextHistoryMutation) ResetChangedBy() {
	m.changed_by = nil
}

// SetChangedAt sets the "changed_at" field.
func (m *SharedContextHistoryMutation) SetChangedAt(t time.Time) {
	m.changed_at = &t
}

// ChangedAt returns the value of the "changed_at" field in the mutation.
func (m *SharedContextHistoryMutation) ChangedAt() (r time.Time, exists bool) {
	v := m.changed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldChangedAt returns the old "changed_at" field's value of the SharedContextHistory entity.
// If the SharedContextHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SharedContextHistoryMutation) OldChangedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangedAt: %w", err)
	}
	return oldValue.ChangedAt, nil
}

// ResetChangedAt resets all changes to the "changed_at" field.
func (m *SharedContextHistoryMutation) ResetChangedAt() {
	m.changed_at = nil
}

// Where appends a list predicates to the SharedContextHistoryMutation builder.
func (m *SharedContextHistoryMutation) Where(ps ...predicate.SharedContextHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SharedContextHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SharedContextHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SharedContextHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SharedContextHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SharedContextHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SharedContextHistory).
func (m *SharedContextHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SharedContextHistoryMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.key != nil {
		fields = append(fields, sharedcontexthistory.FieldKey)
	}
	if m.old_value != nil {
		fields = append(fields, sharedcontexthistory.FieldOldValue)
	}
	if m.new_value != nil {
		fields = append(fields, sharedcontexthistory.FieldNewValue)
	}
	if m.changed_by != nil {
		fields = append(fields, sharedcontexthistory.FieldChangedBy)
	}
	if m.changed_at != nil {
		fields = append(fields, sharedcontexthistory.FieldChangedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SharedContextHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sharedcontexthistory.FieldKey:
		return m.Key()
	case sharedcontexthistory.FieldOldValue:
		return m.OldValue()
	case sharedcontexthistory.FieldNewValue:
		return m.NewValue()
	case sharedcontexthistory.FieldChangedBy:
		return m.ChangedBy()
	case sharedcontexthistory.FieldChangedAt:
		return m.ChangedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SharedContextHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sharedcontexthistory.FieldKey:
		return m.OldKey(ctx)
	case sharedcontexthistory.FieldOldValue:
		return m.OldOldValue(ctx)
	case sharedcontexthistory.FieldNewValue:
		return m.OldNewValue(ctx)
	case sharedcontexthistory.FieldChangedBy:
		return m.OldChangedBy(ctx)
	case sharedcontexthistory.FieldChangedAt:
		return m.OldChangedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SharedContextHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SharedContextHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sharedcontexthistory.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case sharedcontexthistory.FieldOldValue:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOldValue(v)
		return nil
	case sharedcontexthistory.FieldNewValue:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewValue(v)
		return nil
	case sharedcontexthistory.FieldChangedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangedBy(v)
		return nil
	case sharedcontexthistory.FieldChangedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SharedContextHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SharedContextHistoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SharedContextHistoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SharedContextHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SharedContextHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SharedContextHistoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sharedcontexthistory.FieldOldValue) {
		fields = append(fields, sharedcontexthistory.FieldOldValue)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SharedContextHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SharedContextHistoryMutation) ClearField(name string) error {
	switch name {
	case sharedcontexthistory.FieldOldValue:
		m.ClearOldValue()
		return nil
	}
	return fmt.Errorf("unknown SharedContextHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SharedContextHistoryMutation) ResetField(name string) error {
	switch name {
	case sharedcontexthistory.FieldKey:
		m.ResetKey()
		return nil
	case sharedcontexthistory.FieldOldValue:
		m.ResetOldValue()
		return nil
	case sharedcontexthistory.FieldNewValue:
		m.ResetNewValue()
		return nil
	case sharedcontexthistory.FieldChangedBy:
		m.ResetChangedBy()
		return nil
	case sharedcontexthistory.FieldChangedAt:
		m.ResetChangedAt()
		return nil
	}
	return fmt.Errorf("unknown SharedContextHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SharedContextHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SharedContextHistoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SharedContextHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SharedContextHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SharedContextHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SharedContextHistoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SharedContextHistoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SharedContextHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SharedContextHistoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SharedContextHistory edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op             Op
	typ            string
	id             *string
	title          *string
	description    *string
	status         *task.Status
	assignee       *string
	task_order     *int
	addtask_order  *int
	priority       *task.Priority
	feature        *string
	archived       *bool
	archived_at    *time.Time
	archived_by    *string
	archive_reason *string
	metadata       *map[string]interface{}
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	project        *string
	clearedproject bool
	done           bool
	oldValue       func(context.Context) (*Task, error)
	predicates     []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *TaskMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *TaskMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *TaskMutation) ResetProjectID() {
	m.project = nil
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TaskMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[task.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TaskMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[task.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, task.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetAssignee sets the "assignee" field.
func (m *TaskMutation) SetAssignee(s string) {
	m.assignee = &s
}

// Assignee returns the value of the "assignee" field in the mutation.
func (m *TaskMutation) Assignee() (r string, exists bool) {
	v := m.assignee
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignee returns the old "assignee" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAssignee(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignee is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignee requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignee: %w", err)
	}
	return oldValue.Assignee, nil
}

// ClearAssignee clears the value of the "assignee" field.
func (m *TaskMutation) ClearAssignee() {
	m.assignee = nil
	m.clearedFields[task.FieldAssignee] = struct{}{}
}

// AssigneeCleared returns if the "assignee" field was cleared in this mutation.
func (m *TaskMutation) AssigneeCleared() bool {
	_, ok := m.clearedFields[task.FieldAssignee]
	return ok
}

// ResetAssignee resets all changes to the "assignee" field.
func (m *TaskMutation) ResetAssignee() {
	m.assignee = nil
	delete(m.clearedFields, task.FieldAssignee)
}

// SetTaskOrder sets the "task_order" field.
func (m *TaskMutation) SetTaskOrder(i int) {
	m.task_order = &i
	m.addtask_order = nil
}

// TaskOrder returns the value of the "task_order" field in the mutation.
func (m *TaskMutation) TaskOrder() (r int, exists bool) {
	v := m.task_order
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskOrder returns the old "task_order" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTaskOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskOrder: %w", err)
	}
	return oldValue.TaskOrder, nil
}

// AddTaskOrder adds i to the "task_order" field.
func (m *TaskMutation) AddTaskOrder(i int) {
	if m.addtask_order != nil {
		*m.addtask_order += i
	} else {
		m.addtask_order = &i
	}
}

// AddedTaskOrder returns the value that was added to the "task_order" field in this mutation.
func (m *TaskMutation) AddedTaskOrder() (r int, exists bool) {
	v := m.addtask_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetTaskOrder resets all changes to the "task_order" field.
func (m *TaskMutation) ResetTaskOrder() {
	m.task_order = nil
	m.addtask_order = nil
}

// SetPriority sets the "priority" field.
func (m *TaskMutation) SetPriority(t task.Priority) {
	m.priority = &t
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TaskMutation) Priority() (r task.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPriority(ctx context.Context) (v task.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *TaskMutation) ResetPriority() {
	m.priority = nil
}

// SetFeature sets the "feature" field.
func (m *TaskMutation) SetFeature(s string) {
	m.feature = &s
}

// Feature returns the value of the "feature" field in the mutation.
func (m *TaskMutation) Feature() (r string, exists bool) {
	v := m.feature
	if v == nil {
		return
	}
	return *v, true
}

// OldFeature returns the old "feature" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldFeature(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeature: %w", err)
	}
	return oldValue.Feature, nil
}

// ClearFeature clears the value of the "feature" field.
func (m *TaskMutation) ClearFeature() {
	m.feature = nil
	m.clearedFields[task.FieldFeature] = struct{}{}
}

// FeatureCleared returns if the "feature" field was cleared in this mutation.
func (m *TaskMutation) FeatureCleared() bool {
	_, ok := m.clearedFields[task.FieldFeature]
	return ok
}

// ResetFeature resets all changes to the "feature" field.
func (m *TaskMutation) ResetFeature() {
	m.feature = nil
	delete(m.clearedFields, task.FieldFeature)
}

// SetArchived sets the "archived" field.
func (m *TaskMutation) SetArchived(b bool) {
	m.archived = &b
}

// Archived returns the value of the "archived" field in the mutation.
func (m *TaskMutation) Archived() (r bool, exists bool) {
	v := m.archived
	if v == nil {
		return
	}
	return *v, true
}

// OldArchived returns the old "archived" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldArchived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchived: %w", err)
	}
	return oldValue.Archived, nil
}

// ResetArchived resets all changes to the "archived" field.
func (m *TaskMutation) ResetArchived() {
	m.archived = nil
}

// SetArchivedAt sets the "archived_at" field.
func (m *TaskMutation) SetArchivedAt(t time.Time) {
	m.archived_at = &t
}

// ArchivedAt returns the value of the "archived_at" field in the mutation.
func (m *TaskMutation) ArchivedAt() (r time.Time, exists bool) {
	v := m.archived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedAt returns the old "archived_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldArchivedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedAt: %w", err)
	}
	return oldValue.ArchivedAt, nil
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (m *TaskMutation) ClearArchivedAt() {
	m.archived_at = nil
	m.clearedFields[task.FieldArchivedAt] = struct{}{}
}

// ArchivedAtCleared returns if the "archived_at" field was cleared in this mutation.
func (m *TaskMutation) ArchivedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldArchivedAt]
	return ok
}

// ResetArchivedAt resets all changes to the "archived_at" field.
func (m *TaskMutation) ResetArchivedAt() {
	m.archived_at = nil
	delete(m.clearedFields, task.FieldArchivedAt)
}

// SetArchivedBy sets the "archived_by" field.
func (m *TaskMutation) SetArchivedBy(s string) {
	m.archived_by = &s
}

// ArchivedBy returns the value of the "archived_by" field in the mutation.
func (m *TaskMutation) ArchivedBy() (r string, exists bool) {
	v := m.archived_by
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedBy returns the old "archived_by" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldArchivedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedBy: %w", err)
	}
	return oldValue.ArchivedBy, nil
}

// ClearArchivedBy clears the value of the "archived_by" field.
func (m *TaskMutation) ClearArchivedBy() {
	m.archived_by = nil
	m.clearedFields[task.FieldArchivedBy] = struct{}{}
}

// ArchivedByCleared returns if the "archived_by" field was cleared in this mutation.
func (m *TaskMutation) ArchivedByCleared() bool {
	_, ok := m.clearedFields[task.FieldArchivedBy]
	return ok
}

// ResetArchivedBy resets all changes to the "archived_by" field.
func (m *TaskMutation) ResetArchivedBy() {
	m.archived_by = nil
	delete(m.clearedFields, task.FieldArchivedBy)
}

// SetArchiveReason sets the "archive_reason" field.
func (m *TaskMutation) SetArchiveReason(s string) {
	m.archive_reason = &s
}

// ArchiveReason returns the value of the "archive_reason" field in the mutation.
func (m *TaskMutation) ArchiveReason() (r string, exists bool) {
	v := m.archive_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldArchiveReason returns the old "archive_reason" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldArchiveReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchiveReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchiveReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchiveReason: %w", err)
	}
	return oldValue.ArchiveReason, nil
}

// ClearArchiveReason clears the value of the "archive_reason" field.
func (m *TaskMutation) ClearArchiveReason() {
	m.archive_reason = nil
	m.clearedFields[task.FieldArchiveReason] = struct{}{}
}

// ArchiveReasonCleared returns if the "archive_reason" field was cleared in this mutation.
func (m *TaskMutation) ArchiveReasonCleared() bool {
	_, ok := m.clearedFields[task.FieldArchiveReason]
	return ok
}

// ResetArchiveReason resets all changes to the "archive_reason" field.
func (m *TaskMutation) ResetArchiveReason() {
	m.archive_reason = nil
	delete(m.clearedFields, task.FieldArchiveReason)
}

// SetMetadata sets the "metadata" field.
func (m *TaskMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *TaskMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *TaskMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[task.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *TaskMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[task.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *TaskMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, task.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *TaskMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[task.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *TaskMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *TaskMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.project != nil {
		fields = append(fields, task.FieldProjectID)
	}
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.assignee != nil {
		fields = append(fields, task.FieldAssignee)
	}
	if m.task_order != nil {
		fields = append(fields, task.FieldTaskOrder)
	}
	if m.priority != nil {
		fields = append(fields, task.FieldPriority)
	}
	if m.feature != nil {
		fields = append(fields, task.FieldFeature)
	}
	if m.archived != nil {
		fields = append(fields, task.FieldArchived)
	}
	if m.archived_at != nil {
		fields = append(fields, task.FieldArchivedAt)
	}
	if m.archived_by != nil {
		fields = append(fields, task.FieldArchivedBy)
	}
	if m.archive_reason != nil {
		fields = append(fields, task.FieldArchiveReason)
	}
	if m.metadata != nil {
		fields = append(fields, task.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldProjectID:
		return m.ProjectID()
	case task.FieldTitle:
		return m.Title()
	case task.FieldDescription:
		return m.Description()
	case task.FieldStatus:
		return m.Status()
	case task.FieldAssignee:
		return m.Assignee()
	case task.FieldTaskOrder:
		return m.TaskOrder()
	case task.FieldPriority:
		return m.Priority()
	case task.FieldFeature:
		return m.Feature()
	case task.FieldArchived:
		return m.Archived()
	case task.FieldArchivedAt:
		return m.ArchivedAt()
	case task.FieldArchivedBy:
		return m.ArchivedBy()
	case task.FieldArchiveReason:
		return m.ArchiveReason()
	case task.FieldMetadata:
		return m.Metadata()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldProjectID:
		return m.OldProjectID(ctx)
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldAssignee:
		return m.OldAssignee(ctx)
	case task.FieldTaskOrder:
		return m.OldTaskOrder(ctx)
	case task.FieldPriority:
		return m.OldPriority(ctx)
	case task.FieldFeature:
		return m.OldFeature(ctx)
	case task.FieldArchived:
		return m.OldArchived(ctx)
	case task.FieldArchivedAt:
		return m.OldArchivedAt(ctx)
	case task.FieldArchivedBy:
		return m.OldArchivedBy(ctx)
	case task.FieldArchiveReason:
		return m.OldArchiveReason(ctx)
	case task.FieldMetadata:
		return m.OldMetadata(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldAssignee:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignee(v)
		return nil
	case task.FieldTaskOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskOrder(v)
		return nil
	case task.FieldPriority:
		v, ok := value.(task.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case task.FieldFeature:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeature(v)
		return nil
	case task.FieldArchived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchived(v)
		return nil
	case task.FieldArchivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedAt(v)
		return nil
	case task.FieldArchivedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedBy(v)
		return nil
	case task.FieldArchiveReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchiveReason(v)
		return nil
	case task.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addtask_order != nil {
		fields = append(fields, task.FieldTaskOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldTaskOrder:
		return m.AddedTaskOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldTaskOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaskOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldDescription) {
		fields = append(fields, task.FieldDescription)
	}
	if m.FieldCleared(task.FieldAssignee) {
		fields = append(fields, task.FieldAssignee)
	}
	if m.FieldCleared(task.FieldFeature) {
		fields = append(fields, task.FieldFeature)
	}
	if m.FieldCleared(task.FieldArchivedAt) {
		fields = append(fields, task.FieldArchivedAt)
	}
	if m.FieldCleared(task.FieldArchivedBy) {
		fields = append(fields, task.FieldArchivedBy)
	}
	if m.FieldCleared(task.FieldArchiveReason) {
		fields = append(fields, task.FieldArchiveReason)
	}
	if m.FieldCleared(task.FieldMetadata) {
		fields = append(fields, task.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldDescription:
		m.ClearDescription()
		return nil
	case task.FieldAssignee:
		m.ClearAssignee()
		return nil
	case task.FieldFeature:
		m.ClearFeature()
		return nil
	case task.FieldArchivedAt:
		m.ClearArchivedAt()
		return nil
	case task.FieldArchivedBy:
		m.ClearArchivedBy()
		return nil
	case task.FieldArchiveReason:
		m.ClearArchiveReason()
		return nil
	case task.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldProjectID:
		m.ResetProjectID()
		return nil
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldAssignee:
		m.ResetAssignee()
		return nil
	case task.FieldTaskOrder:
		m.ResetTaskOrder()
		return nil
	case task.FieldPriority:
		m.ResetPriority()
		return nil
	case task.FieldFeature:
		m.ResetFeature()
		return nil
	case task.FieldArchived:
		m.ResetArchived()
		return nil
	case task.FieldArchivedAt:
		m.ResetArchivedAt()
		return nil
	case task.FieldArchivedBy:
		m.ResetArchivedBy()
		return nil
	case task.FieldArchiveReason:
		m.ResetArchiveReason()
		return nil
	case task.FieldMetadata:
		m.ResetMetadata()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, task.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, task.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}
