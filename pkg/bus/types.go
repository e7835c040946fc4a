// Package bus provides the in-process publish/subscribe message bus that
// decouples agents from each other. It owns agent mailboxes, channel
// subscriptions and ephemeral meeting rooms.
package bus

import (
	"time"
)

// ChannelKind identifies the routing class of a message.
type ChannelKind string

// Channel kinds.
const (
	ChannelDirect     ChannelKind = "direct"
	ChannelBroadcast  ChannelKind = "broadcast"
	ChannelDepartment ChannelKind = "department"
	ChannelTeam       ChannelKind = "team"
	ChannelMeeting    ChannelKind = "meeting"
	ChannelSystem     ChannelKind = "system"
)

// MessageKind classifies message content.
type MessageKind string

// Message kinds.
const (
	KindText         MessageKind = "text"
	KindMemo         MessageKind = "memo"
	KindTask         MessageKind = "task"
	KindApproval     MessageKind = "approval"
	KindSystem       MessageKind = "system"
	KindAnnouncement MessageKind = "announcement"
	KindDiscussion   MessageKind = "discussion"
)

// Message is an immutable record routed through the bus. Once published it
// must not be mutated by consumers.
type Message struct {
	ID          string         `json:"id"`
	ChannelKind ChannelKind    `json:"channel_kind"`
	ChannelID   string         `json:"channel_id,omitempty"`
	From        string         `json:"from"`
	To          string         `json:"to,omitempty"`
	Subject     string         `json:"subject,omitempty"`
	Content     string         `json:"content"`
	Kind        MessageKind    `json:"kind"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Priority    int            `json:"priority"`
	RequiresAck bool           `json:"requires_ack,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// Callback is invoked synchronously on delivery to a subscription. Panics are
// caught by the bus and must not block delivery to other subscribers.
type Callback func(Message)

// Filter decides whether a subscription wants a particular message.
// A nil filter accepts everything.
type Filter func(Message) bool

// ArtifactKind classifies meeting artifacts.
type ArtifactKind string

// Meeting artifact kinds.
const (
	ArtifactMetric  ArtifactKind = "metric"
	ArtifactPlot    ArtifactKind = "plot"
	ArtifactTable   ArtifactKind = "table"
	ArtifactSummary ArtifactKind = "summary"
)

// Artifact is a typed attachment presented during a meeting.
type Artifact struct {
	ID        string       `json:"id"`
	Kind      ArtifactKind `json:"kind"`
	Title     string       `json:"title,omitempty"`
	Presenter string       `json:"presenter,omitempty"`
	Data      any          `json:"data"`
	CreatedAt time.Time    `json:"created_at"`
}

// Stats is a snapshot of bus counters.
type Stats struct {
	MessagesSent     int `json:"messages_sent"`
	Delivered        int `json:"delivered"`
	FailedDeliveries int `json:"failed_deliveries"`
	DroppedMessages  int `json:"dropped_messages"`
	ActiveMailboxes  int `json:"active_mailboxes"`
	ActiveMeetings   int `json:"active_meetings"`
	Subscriptions    int `json:"subscriptions"`
	HistorySize      int `json:"history_size"`
}
