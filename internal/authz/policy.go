package authz

import (
	"slices"

	"github.com/DevITJAX/FlowOps/internal/entity"
)

// Operation benennt eine autorisierungspflichtige Aktion.
type Operation string

const (
	ProjectRead          Operation = "project:read"
	ProjectUpdate        Operation = "project:update"
	ProjectDelete        Operation = "project:delete"
	ProjectManageMembers Operation = "project:manage_members"
	TaskCreate           Operation = "task:create"
	TaskUpdate           Operation = "task:update"
	TaskDelete           Operation = "task:delete"
	TeamCreate           Operation = "team:create"
	TeamUpdate           Operation = "team:update"
	TeamDelete           Operation = "team:delete"
	TeamManageMembers    Operation = "team:manage_members"
	CommentModify        Operation = "comment:modify"
	TimeLogModify        Operation = "timelog:modify"
	AttachmentDelete     Operation = "attachment:delete"
)

// Actor ist der handelnde Benutzer.
type Actor struct {
	ID   string
	Role entity.UserRole
}

// Target trägt die Beziehungen des Zielobjekts, die für die Regeln relevant sind.
// Nicht zutreffende Felder bleiben leer.
type Target struct {
	ProjectOwnerID   string
	ProjectMemberIDs []string
	AssigneeID       *string
	ReporterID       string
	TeamLeadID       *string
	RecordOwnerID    string // Kommentar-Autor, TimeLog-Benutzer, Attachment-Uploader
}

type clause func(a Actor, t Target) bool

func isAdmin(a Actor, _ Target) bool { return a.Role == entity.RoleAdmin }

func isProjectOwner(a Actor, t Target) bool { return t.ProjectOwnerID != "" && a.ID == t.ProjectOwnerID }

func isProjectMember(a Actor, t Target) bool { return slices.Contains(t.ProjectMemberIDs, a.ID) }

func isAssignee(a Actor, t Target) bool { return t.AssigneeID != nil && a.ID == *t.AssigneeID }

func isReporter(a Actor, t Target) bool { return t.ReporterID != "" && a.ID == t.ReporterID }

func isTeamLead(a Actor, t Target) bool { return t.TeamLeadID != nil && a.ID == *t.TeamLeadID }

func isRecordOwner(a Actor, t Target) bool { return t.RecordOwnerID != "" && a.ID == t.RecordOwnerID }

// policy ist die kanonische Regeltabelle: der Akteur ist autorisiert,
// sobald EINE Klausel der Operation zutrifft.
var policy = map[Operation][]clause{
	ProjectRead:          {isAdmin, isProjectOwner, isProjectMember},
	ProjectUpdate:        {isAdmin, isProjectOwner},
	ProjectDelete:        {isAdmin, isProjectOwner},
	ProjectManageMembers: {isAdmin, isProjectOwner},
	TaskCreate:           {isAdmin, isProjectOwner, isProjectMember},
	TaskUpdate:           {isAdmin, isProjectOwner, isAssignee, isReporter},
	TaskDelete:           {isAdmin, isProjectOwner},
	TeamCreate:           {isAdmin, isProjectOwner},
	TeamUpdate:           {isAdmin, isProjectOwner, isTeamLead},
	TeamDelete:           {isAdmin, isProjectOwner},
	TeamManageMembers:    {isAdmin, isProjectOwner, isTeamLead},
	CommentModify:        {isAdmin, isRecordOwner},
	TimeLogModify:        {isAdmin, isRecordOwner},
	AttachmentDelete:     {isAdmin, isRecordOwner},
}

// Authorize wertet die Regeltabelle für (actor, op, target) aus.
// Unbekannte Operationen sind grundsätzlich nicht erlaubt.
func Authorize(a Actor, op Operation, t Target) bool {
	clauses, ok := policy[op]
	if !ok {
		return false
	}
	for _, c := range clauses {
		if c(a, t) {
			return true
		}
	}
	return false
}
