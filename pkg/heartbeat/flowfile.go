package heartbeat

import (
	"github.com/google/uuid"
)

// Outcome names the relationship a payload is routed to.
type Outcome string

const (
	Success Outcome = "SUCCESS"
	Failure Outcome = "FAILURE"
)

// Flow-file attribute keys.
const (
	AttrUUID     = "uuid"
	AttrMimeType = "mime.type"
	AttrUnit     = "heartbeat.unit"
	AttrFields   = "heartbeat.fields"
	AttrError    = "heartbeat.error"

	MimeTypeJSON = "application/json"
)

// FlowFile is one produced payload plus its attributes.
type FlowFile struct {
	ID         uuid.UUID
	Attributes map[string]string
	Content    []byte
}

func newFlowFile(id uuid.UUID, unit Unit) *FlowFile {
	return &FlowFile{
		ID: id,
		Attributes: map[string]string{
			AttrUUID:     id.String(),
			AttrMimeType: MimeTypeJSON,
			AttrUnit:     string(unit.Resolve()),
		},
	}
}
