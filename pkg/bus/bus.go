package bus

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Default capacity bounds. On overflow the oldest entry is dropped and a
// counter is incremented; the bus never blocks a producer.
const (
	DefaultMailboxCapacity = 1000
	DefaultHistoryCapacity = 10000
)

// subscription is a registered interest in a (kind, channel) pair.
// ChannelID "*" matches every channel of the kind.
type subscription struct {
	id           string
	subscriberID string
	kind         ChannelKind
	channelID    string
	callback     Callback
	filter       Filter
}

// mailbox is a bounded FIFO of messages owned by one agent.
type mailbox struct {
	mu       sync.Mutex
	queue    []Message
	capacity int
	dropped  int
	notify   chan struct{} // signalled on push, capacity 1
}

func newMailbox(capacity int) *mailbox {
	return &mailbox{
		capacity: capacity,
		notify:   make(chan struct{}, 1),
	}
}

func (mb *mailbox) push(msg Message) {
	mb.mu.Lock()
	if len(mb.queue) >= mb.capacity {
		mb.queue = mb.queue[1:]
		mb.dropped++
	}
	mb.queue = append(mb.queue, msg)
	mb.mu.Unlock()

	select {
	case mb.notify <- struct{}{}:
	default:
	}
}

func (mb *mailbox) pop(maxN int) []Message {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	if len(mb.queue) == 0 {
		return nil
	}
	n := maxN
	if n <= 0 || n > len(mb.queue) {
		n = len(mb.queue)
	}
	out := make([]Message, n)
	copy(out, mb.queue[:n])
	mb.queue = append([]Message(nil), mb.queue[n:]...)
	return out
}

func (mb *mailbox) peek(maxN int) []Message {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	n := maxN
	if n <= 0 || n > len(mb.queue) {
		n = len(mb.queue)
	}
	out := make([]Message, n)
	copy(out, mb.queue[:n])
	return out
}

func (mb *mailbox) size() int {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	return len(mb.queue)
}

// MessageBus routes messages between registered mailboxes across direct,
// broadcast, group, meeting and system channels. All methods are safe for
// concurrent use.
type MessageBus struct {
	mu            sync.RWMutex
	mailboxes     map[string]*mailbox
	subscriptions map[string]*subscription

	historyMu  sync.Mutex
	history    []Message
	historyCap int

	roomMu      sync.RWMutex
	activeRooms map[string]*MeetingRoom
	endedRooms  map[string]*MeetingRoom

	statsMu sync.Mutex
	stats   Stats

	mailboxCap int
}

// Option configures a MessageBus.
type Option func(*MessageBus)

// WithMailboxCapacity overrides the per-mailbox bound.
func WithMailboxCapacity(n int) Option {
	return func(b *MessageBus) { b.mailboxCap = n }
}

// WithHistoryCapacity overrides the history bound.
func WithHistoryCapacity(n int) Option {
	return func(b *MessageBus) { b.historyCap = n }
}

// New creates an empty message bus.
func New(opts ...Option) *MessageBus {
	b := &MessageBus{
		mailboxes:     make(map[string]*mailbox),
		subscriptions: make(map[string]*subscription),
		activeRooms:   make(map[string]*MeetingRoom),
		endedRooms:    make(map[string]*MeetingRoom),
		historyCap:    DefaultHistoryCapacity,
		mailboxCap:    DefaultMailboxCapacity,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// RegisterMailbox creates a mailbox for the given agent. Idempotent.
func (b *MessageBus) RegisterMailbox(agentID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.mailboxes[agentID]; !ok {
		b.mailboxes[agentID] = newMailbox(b.mailboxCap)
	}
}

// UnregisterMailbox removes an agent's mailbox. Pending messages are dropped.
func (b *MessageBus) UnregisterMailbox(agentID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.mailboxes, agentID)
}

// Subscribe registers interest in a (kind, channel) pair. channelID "*"
// matches every channel of the kind. The callback may be nil; filter may be
// nil to accept all messages. Returns the subscription id.
func (b *MessageBus) Subscribe(subscriberID string, kind ChannelKind, channelID string, callback Callback, filter Filter) string {
	if channelID == "" {
		channelID = "*"
	}
	sub := &subscription{
		id:           uuid.New().String(),
		subscriberID: subscriberID,
		kind:         kind,
		channelID:    channelID,
		callback:     callback,
		filter:       filter,
	}
	b.mu.Lock()
	b.subscriptions[sub.id] = sub
	b.mu.Unlock()
	return sub.id
}

// Unsubscribe removes a subscription by id.
func (b *MessageBus) Unsubscribe(subscriptionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subscriptions, subscriptionID)
}

// SendDirect appends a message to the receiver's mailbox. If the receiver has
// no mailbox the delivery is counted as failed but the message is still
// returned to the caller.
func (b *MessageBus) SendDirect(from, to, subject, content string, kind MessageKind, meta map[string]any, priority int) Message {
	msg := b.newMessage(ChannelDirect, "", from, to, subject, content, kind, meta, priority)
	b.recordHistory(msg)

	b.mu.RLock()
	mb, ok := b.mailboxes[to]
	b.mu.RUnlock()
	if !ok {
		b.countFailed(1)
		slog.Warn("Direct message to unknown mailbox", "from", from, "to", to)
		return msg
	}
	mb.push(msg)
	b.countDelivered(1)
	b.notifySubscribers(msg)
	return msg
}

// SendToGroup fans a message out to every subscriber of the given group
// channel (department or team), honoring per-subscriber filters.
func (b *MessageBus) SendToGroup(kind ChannelKind, from, channelID, subject, content string, msgKind MessageKind, meta map[string]any, priority int) Message {
	msg := b.newMessage(kind, channelID, from, "", subject, content, msgKind, meta, priority)
	b.recordHistory(msg)
	b.deliverToSubscribers(msg, func(sub *subscription) bool {
		return sub.subscriberID != from
	})
	return msg
}

// Broadcast delivers to every broadcast subscriber and to every registered
// mailbox except the sender's.
func (b *MessageBus) Broadcast(from, subject, content string, kind MessageKind, meta map[string]any, priority int) Message {
	msg := b.newMessage(ChannelBroadcast, "", from, "", subject, content, kind, meta, priority)
	b.recordHistory(msg)

	b.mu.RLock()
	targets := make([]*mailbox, 0, len(b.mailboxes))
	for id, mb := range b.mailboxes {
		if id == from {
			continue
		}
		targets = append(targets, mb)
	}
	b.mu.RUnlock()

	for _, mb := range targets {
		mb.push(msg)
	}
	b.countDelivered(len(targets))
	b.notifySubscribers(msg)
	return msg
}

// SendSystem delivers a priority-2 system notification to one agent.
func (b *MessageBus) SendSystem(to, subject, content string, meta map[string]any) Message {
	msg := b.newMessage(ChannelSystem, "", "system", to, subject, content, KindSystem, meta, 2)
	b.recordHistory(msg)

	b.mu.RLock()
	mb, ok := b.mailboxes[to]
	b.mu.RUnlock()
	if !ok {
		b.countFailed(1)
		return msg
	}
	mb.push(msg)
	b.countDelivered(1)
	b.notifySubscribers(msg)
	return msg
}

// GetMessages pulls up to maxN messages from the agent's mailbox, waiting up
// to timeout for at least one to arrive. Returns nil when the mailbox is
// empty after the timeout or does not exist.
func (b *MessageBus) GetMessages(agentID string, timeout time.Duration, maxN int) []Message {
	b.mu.RLock()
	mb, ok := b.mailboxes[agentID]
	b.mu.RUnlock()
	if !ok {
		return nil
	}

	if msgs := mb.pop(maxN); msgs != nil {
		return msgs
	}
	if timeout <= 0 {
		return nil
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case <-mb.notify:
			if msgs := mb.pop(maxN); msgs != nil {
				return msgs
			}
		case <-timer.C:
			return mb.pop(maxN)
		}
	}
}

// PeekMessages returns up to maxN messages without consuming them.
func (b *MessageBus) PeekMessages(agentID string, maxN int) []Message {
	b.mu.RLock()
	mb, ok := b.mailboxes[agentID]
	b.mu.RUnlock()
	if !ok {
		return nil
	}
	return mb.peek(maxN)
}

// MailboxSize returns the number of queued messages for an agent.
func (b *MessageBus) MailboxSize(agentID string) int {
	b.mu.RLock()
	mb, ok := b.mailboxes[agentID]
	b.mu.RUnlock()
	if !ok {
		return 0
	}
	return mb.size()
}

// History returns up to maxN most recent messages from the bounded history.
func (b *MessageBus) History(maxN int) []Message {
	b.historyMu.Lock()
	defer b.historyMu.Unlock()
	n := maxN
	if n <= 0 || n > len(b.history) {
		n = len(b.history)
	}
	out := make([]Message, n)
	copy(out, b.history[len(b.history)-n:])
	return out
}

// GetStats returns a snapshot of bus counters.
func (b *MessageBus) GetStats() Stats {
	b.statsMu.Lock()
	s := b.stats
	b.statsMu.Unlock()

	b.mu.RLock()
	s.ActiveMailboxes = len(b.mailboxes)
	s.Subscriptions = len(b.subscriptions)
	b.mu.RUnlock()

	b.roomMu.RLock()
	s.ActiveMeetings = len(b.activeRooms)
	b.roomMu.RUnlock()

	b.historyMu.Lock()
	s.HistorySize = len(b.history)
	s.DroppedMessages = b.droppedTotal()
	b.historyMu.Unlock()
	return s
}

func (b *MessageBus) droppedTotal() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	total := 0
	for _, mb := range b.mailboxes {
		mb.mu.Lock()
		total += mb.dropped
		mb.mu.Unlock()
	}
	return total
}

// ────────────────────────────────────────────────────────────

func (b *MessageBus) newMessage(chKind ChannelKind, channelID, from, to, subject, content string, kind MessageKind, meta map[string]any, priority int) Message {
	b.statsMu.Lock()
	b.stats.MessagesSent++
	b.statsMu.Unlock()
	return Message{
		ID:          uuid.New().String(),
		ChannelKind: chKind,
		ChannelID:   channelID,
		From:        from,
		To:          to,
		Subject:     subject,
		Content:     content,
		Kind:        kind,
		Metadata:    meta,
		Priority:    priority,
		CreatedAt:   time.Now(),
	}
}

func (b *MessageBus) recordHistory(msg Message) {
	b.historyMu.Lock()
	defer b.historyMu.Unlock()
	if len(b.history) >= b.historyCap {
		b.history = b.history[1:]
	}
	b.history = append(b.history, msg)
}

// deliverToSubscribers pushes msg to the mailbox of every matching subscriber
// and invokes callbacks. The accept predicate lets callers exclude the sender.
func (b *MessageBus) deliverToSubscribers(msg Message, accept func(*subscription) bool) {
	b.mu.RLock()
	var matched []*subscription
	for _, sub := range b.subscriptions {
		if sub.kind != msg.ChannelKind {
			continue
		}
		if sub.channelID != "*" && sub.channelID != msg.ChannelID {
			continue
		}
		if accept != nil && !accept(sub) {
			continue
		}
		matched = append(matched, sub)
	}
	b.mu.RUnlock()

	delivered := 0
	for _, sub := range matched {
		if sub.filter != nil && !sub.filter(msg) {
			continue
		}
		b.mu.RLock()
		mb, ok := b.mailboxes[sub.subscriberID]
		b.mu.RUnlock()
		if ok {
			mb.push(msg)
			delivered++
		}
		b.invokeCallback(sub, msg)
	}
	b.countDelivered(delivered)
}

// notifySubscribers invokes callbacks for subscriptions matching the message
// channel without re-delivering to mailboxes (used for direct/broadcast
// messages whose mailbox delivery is handled separately).
func (b *MessageBus) notifySubscribers(msg Message) {
	b.mu.RLock()
	var matched []*subscription
	for _, sub := range b.subscriptions {
		if sub.kind != msg.ChannelKind {
			continue
		}
		if sub.channelID != "*" && sub.channelID != msg.ChannelID {
			continue
		}
		if sub.callback == nil {
			continue
		}
		matched = append(matched, sub)
	}
	b.mu.RUnlock()

	for _, sub := range matched {
		if sub.filter != nil && !sub.filter(msg) {
			continue
		}
		b.invokeCallback(sub, msg)
	}
}

// invokeCallback runs a subscription callback, isolating panics so a broken
// subscriber cannot block delivery.
func (b *MessageBus) invokeCallback(sub *subscription, msg Message) {
	if sub.callback == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Subscription callback panicked",
				"subscriber", sub.subscriberID,
				"channel_kind", sub.kind,
				"panic", r)
		}
	}()
	sub.callback(msg)
}

func (b *MessageBus) countDelivered(n int) {
	if n == 0 {
		return
	}
	b.statsMu.Lock()
	b.stats.Delivered += n
	b.statsMu.Unlock()
}

func (b *MessageBus) countFailed(n int) {
	b.statsMu.Lock()
	b.stats.FailedDeliveries += n
	b.statsMu.Unlock()
}
