package bus

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// MeetingRoom is an ephemeral discussion space with a fixed participant set
// and an ordered transcript. Rooms are created and ended through the bus;
// ended rooms are retained for later retrieval.
type MeetingRoom struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Host         string     `json:"host"`
	Participants []string   `json:"participants"`
	Transcript   []Message  `json:"transcript"`
	Artifacts    []Artifact `json:"artifacts"`
	StartedAt    time.Time  `json:"started_at"`
	EndedAt      *time.Time `json:"ended_at,omitempty"`

	mu sync.Mutex
}

// TranscriptSnapshot returns a copy of the transcript so far.
func (r *MeetingRoom) TranscriptSnapshot() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.Transcript))
	copy(out, r.Transcript)
	return out
}

func (r *MeetingRoom) hasParticipant(agentID string) bool {
	for _, p := range r.Participants {
		if p == agentID {
			return true
		}
	}
	return false
}

// CreateMeetingRoom opens a room and notifies every participant with a system
// message. Idempotent on id: an existing active room is returned unchanged.
func (b *MessageBus) CreateMeetingRoom(id, title, host string, participants []string) *MeetingRoom {
	if id == "" {
		id = uuid.New().String()
	}

	b.roomMu.Lock()
	if room, ok := b.activeRooms[id]; ok {
		b.roomMu.Unlock()
		return room
	}
	room := &MeetingRoom{
		ID:           id,
		Title:        title,
		Host:         host,
		Participants: uniqueStrings(append([]string{host}, participants...)),
		StartedAt:    time.Now(),
	}
	b.activeRooms[id] = room
	b.roomMu.Unlock()

	for _, p := range room.Participants {
		b.SendSystem(p, "Meeting invitation: "+title, "You have been invited to meeting "+id,
			map[string]any{"meeting_id": id, "host": host})
	}
	return room
}

// GetMeetingRoom returns an active or ended room by id.
func (b *MessageBus) GetMeetingRoom(id string) (*MeetingRoom, bool) {
	b.roomMu.RLock()
	defer b.roomMu.RUnlock()
	if room, ok := b.activeRooms[id]; ok {
		return room, true
	}
	room, ok := b.endedRooms[id]
	return room, ok
}

// IsMeetingActive reports whether the room exists and has not ended.
func (b *MessageBus) IsMeetingActive(id string) bool {
	b.roomMu.RLock()
	defer b.roomMu.RUnlock()
	_, ok := b.activeRooms[id]
	return ok
}

// SendToMeeting appends to the room transcript and fans out to every
// participant except the sender. Returns nil if the room is not active.
func (b *MessageBus) SendToMeeting(roomID, from, content string, kind MessageKind) *Message {
	b.roomMu.RLock()
	room, ok := b.activeRooms[roomID]
	b.roomMu.RUnlock()
	if !ok {
		return nil
	}

	msg := b.newMessage(ChannelMeeting, roomID, from, "", "", content, kind, nil, 1)
	b.recordHistory(msg)

	room.mu.Lock()
	room.Transcript = append(room.Transcript, msg)
	participants := append([]string(nil), room.Participants...)
	room.mu.Unlock()

	delivered := 0
	for _, p := range participants {
		if p == from {
			continue
		}
		b.mu.RLock()
		mb, ok := b.mailboxes[p]
		b.mu.RUnlock()
		if ok {
			mb.push(msg)
			delivered++
		} else {
			b.countFailed(1)
		}
	}
	b.countDelivered(delivered)
	b.notifySubscribers(msg)
	return &msg
}

// AddMeetingArtifact attaches a typed artifact to an active room.
// Returns false if the room is not active.
func (b *MessageBus) AddMeetingArtifact(roomID string, kind ArtifactKind, data any, title, presenter string) bool {
	b.roomMu.RLock()
	room, ok := b.activeRooms[roomID]
	b.roomMu.RUnlock()
	if !ok {
		return false
	}
	room.mu.Lock()
	room.Artifacts = append(room.Artifacts, Artifact{
		ID:        uuid.New().String(),
		Kind:      kind,
		Title:     title,
		Presenter: presenter,
		Data:      data,
		CreatedAt: time.Now(),
	})
	room.mu.Unlock()
	return true
}

// EndMeeting finalizes the transcript, notifies participants and moves the
// room to the retained set. Returns nil if the room is not active.
func (b *MessageBus) EndMeeting(roomID string) *MeetingRoom {
	b.roomMu.Lock()
	room, ok := b.activeRooms[roomID]
	if !ok {
		b.roomMu.Unlock()
		return nil
	}
	delete(b.activeRooms, roomID)
	b.endedRooms[roomID] = room
	b.roomMu.Unlock()

	now := time.Now()
	room.mu.Lock()
	room.EndedAt = &now
	participants := append([]string(nil), room.Participants...)
	room.mu.Unlock()

	for _, p := range participants {
		b.SendSystem(p, "Meeting ended: "+room.Title, "Meeting "+roomID+" has ended",
			map[string]any{"meeting_id": roomID})
	}
	return room
}

// ActiveMeetings returns the ids of all active rooms.
func (b *MessageBus) ActiveMeetings() []string {
	b.roomMu.RLock()
	defer b.roomMu.RUnlock()
	ids := make([]string, 0, len(b.activeRooms))
	for id := range b.activeRooms {
		ids = append(ids, id)
	}
	return ids
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
