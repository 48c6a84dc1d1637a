package connection

import "github.com/zqrup/esphome-sub000/internal/frame"

// Creator encodes one deferred batch item's message. remainingSize is the
// budget left in the current frame (math.MaxUint16 for the first item in a
// batch; after that, frame.MaxPacketSize minus the bytes the earlier items
// of the batch used); isSingle is true when this item
// is the batch's only member, per process_batch_'s fast path. Creator
// returns ok=false if the message would not fit in remainingSize, matching
// the original's 0-return-means-too-large convention.
type Creator func(remainingSize int, isSingle bool) (payload []byte, msgType uint16, ok bool)

// batchItem is one pending deferred send, keyed by (entityKey, msgType) so
// a rapid run of state changes on the same entity collapses to the latest
// value instead of sending every intermediate one.
type batchItem struct {
	entityKey uint32
	msgType   uint16
	creator   Creator
}

// deferredBatch accumulates state/list-entities messages to coalesce into
// as few TCP frames as possible, mirroring api_connection.cpp's
// DeferredBatch/process_batch_.
type deferredBatch struct {
	items     []batchItem
	scheduled bool
}

// add inserts or replaces (by entityKey+msgType) a pending item, preserving
// the original item's position when replacing — this is what keeps a
// rapid-fire sequence of updates to one entity from reordering relative to
// other entities' pending updates.
func (d *deferredBatch) add(entityKey uint32, msgType uint16, creator Creator) {
	for i := range d.items {
		if d.items[i].entityKey == entityKey && d.items[i].msgType == msgType {
			d.items[i].creator = creator
			return
		}
	}
	d.items = append(d.items, batchItem{entityKey: entityKey, msgType: msgType, creator: creator})
}

func (d *deferredBatch) empty() bool { return len(d.items) == 0 }

// drain encodes as many pending items as fit, in order, stopping at the
// first one that doesn't, and returns the packets that did along with the
// leftover items to retry next round. A single-item batch uses the
// is_single fast path with an effectively unbounded budget.
func (d *deferredBatch) drain() (infos []frame.PacketInfo, buf []byte, remaining []batchItem) {
	if len(d.items) == 0 {
		return nil, nil, nil
	}
	if len(d.items) == 1 {
		payload, msgType, ok := d.items[0].creator(maxUint16, true)
		if !ok {
			return nil, nil, nil
		}
		return []frame.PacketInfo{{MessageType: msgType, PayloadSize: len(payload)}}, payload, nil
	}

	buf = make([]byte, 0, 512)
	budget := maxUint16
	for i, item := range d.items {
		payload, msgType, ok := item.creator(budget, false)
		if !ok {
			remaining = d.items[i:]
			break
		}
		infos = append(infos, frame.PacketInfo{MessageType: msgType, Offset: len(buf), PayloadSize: len(payload)})
		buf = append(buf, payload...)
		// After the first message, cap the remaining budget at
		// MAX_PACKET_SIZE to avoid IP fragmentation, then keep
		// decrementing by what's actually been used so the whole
		// batch stays within that cap instead of resetting every item.
		if i == 0 {
			budget = frame.MaxPacketSize
		}
		budget -= len(payload)
	}
	return infos, buf, remaining
}

const maxUint16 = 1<<16 - 1
