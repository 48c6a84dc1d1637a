package connection

import "testing"

func constCreator(payload []byte, msgType uint16) Creator {
	return func(remainingSize int, isSingle bool) ([]byte, uint16, bool) {
		if len(payload) > remainingSize {
			return nil, 0, false
		}
		return payload, msgType, true
	}
}

func TestDeferredBatchAddDedupsByEntityAndTypePreservingPosition(t *testing.T) {
	var d deferredBatch
	d.add(1, 10, constCreator([]byte{1}, 10))
	d.add(2, 20, constCreator([]byte{2}, 20))
	d.add(1, 10, constCreator([]byte{9}, 10)) // replaces the first item in place

	if len(d.items) != 2 {
		t.Fatalf("expected dedup to keep 2 items, got %d", len(d.items))
	}
	if d.items[0].entityKey != 1 || d.items[1].entityKey != 2 {
		t.Fatalf("expected original positions preserved, got %+v", d.items)
	}
	payload, _, ok := d.items[0].creator(maxUint16, false)
	if !ok || len(payload) != 1 || payload[0] != 9 {
		t.Fatalf("expected replaced item to carry the latest payload, got %v ok=%v", payload, ok)
	}
}

func TestDeferredBatchDrainSingleItemUsesFastPath(t *testing.T) {
	var d deferredBatch
	d.add(1, 10, constCreator([]byte{1, 2, 3}, 10))

	infos, buf, remaining := d.drain()
	if len(infos) != 1 || infos[0].MessageType != 10 || infos[0].PayloadSize != 3 {
		t.Fatalf("unexpected single-item drain result: %+v", infos)
	}
	if len(buf) != 3 {
		t.Fatalf("expected payload of length 3, got %d", len(buf))
	}
	if remaining != nil {
		t.Fatalf("expected no remaining items, got %+v", remaining)
	}
}

func TestDeferredBatchDrainMultiItemBudgetShrinksAfterFirstItem(t *testing.T) {
	var d deferredBatch
	// The first item only has to fit under the generous maxUint16 budget;
	// every item after it must fit under frame.MaxPacketSize (1390).
	firstFitsOnlyUnderWideBudget := make([]byte, 2000)
	secondTooLargeForNarrowBudget := make([]byte, 1500)
	d.add(1, 1, constCreator(firstFitsOnlyUnderWideBudget, 1))
	d.add(2, 2, constCreator(secondTooLargeForNarrowBudget, 2))
	d.add(3, 3, constCreator([]byte{5}, 3))

	infos, buf, remaining := d.drain()
	if len(infos) != 1 {
		t.Fatalf("expected only the first item to be sent, got %d infos", len(infos))
	}
	if len(buf) != 2000 {
		t.Fatalf("expected buffer to hold the first item's full payload, got %d bytes", len(buf))
	}
	if len(remaining) != 2 || remaining[0].entityKey != 2 || remaining[1].entityKey != 3 {
		t.Fatalf("expected items 2 and 3 to be rescheduled, got %+v", remaining)
	}
}

func TestDeferredBatchEmpty(t *testing.T) {
	var d deferredBatch
	if !d.empty() {
		t.Fatalf("expected a freshly zero-valued batch to be empty")
	}
	d.add(1, 1, constCreator([]byte{1}, 1))
	if d.empty() {
		t.Fatalf("expected batch with an item to be non-empty")
	}
}
