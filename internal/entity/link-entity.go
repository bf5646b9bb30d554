package entity

import "time"

type IssueLinkEntity struct {
	ID           string    `json:"id"`
	LinkType     LinkType  `json:"link_type"`
	SourceTaskID string    `json:"source_task_id"`
	TargetTaskID string    `json:"target_task_id"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
}

// LinkedTaskRef ist die abgespeckte Aufgabendarstellung am anderen Ende eines Links.
type LinkedTaskRef struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	TaskKey string     `json:"task_key"`
	Status  TaskStatus `json:"status"`
	Type    TaskType   `json:"type"`
}

// IssueLinkView ist ein Link aus Sicht einer bestimmten Aufgabe: der Typ ist
// bereits in Leserichtung gedreht, Task ist das jeweils andere Ende.
type IssueLinkView struct {
	ID        string        `json:"id"`
	LinkType  LinkType      `json:"link_type"`
	Task      LinkedTaskRef `json:"task"`
	CreatedBy string        `json:"created_by"`
	CreatedAt time.Time     `json:"created_at"`
}

type LinkType string

const (
	LinkBlocks         LinkType = "blocks"
	LinkIsBlockedBy    LinkType = "is_blocked_by"
	LinkRelatesTo      LinkType = "relates_to"
	LinkDuplicates     LinkType = "duplicates"
	LinkIsDuplicatedBy LinkType = "is_duplicated_by"
	LinkClones         LinkType = "clones"
	LinkIsClonedBy     LinkType = "is_cloned_by"
)

func (t LinkType) IsValid() bool {
	switch t {
	case LinkBlocks, LinkIsBlockedBy, LinkRelatesTo, LinkDuplicates,
		LinkIsDuplicatedBy, LinkClones, LinkIsClonedBy:
		return true
	}

	return false
}

// Reverse liefert den Linktyp aus Sicht der Zielaufgabe.
// Ein gespeichertes "blocks" liest sich vom Ziel aus als "is_blocked_by".
func (t LinkType) Reverse() LinkType {
	switch t {
	case LinkBlocks:
		return LinkIsBlockedBy
	case LinkIsBlockedBy:
		return LinkBlocks
	case LinkDuplicates:
		return LinkIsDuplicatedBy
	case LinkIsDuplicatedBy:
		return LinkDuplicates
	case LinkClones:
		return LinkIsClonedBy
	case LinkIsClonedBy:
		return LinkClones
	}
	return t // relates_to ist symmetrisch
}
