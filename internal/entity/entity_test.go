package entity

import "testing"

type fakeDriver struct{ base Base }

func (f fakeDriver) Base() Base                  { return f.base }
func (f fakeDriver) State() any                   { return false }
func (f fakeDriver) HandleCommand(cmd any) error  { return nil }

func TestObjectIDHashIsFNV1NotFNV1a(t *testing.T) {
	// FNV-1 multiplies then xors; FNV-1a xors then multiplies. For a
	// single-byte input the two disagree whenever the byte isn't 0, so
	// this pins us to the multiply-first variant.
	got := ObjectIDHash("a")
	basis := fnvOffsetBasis32
	want := (basis * fnvPrime32) ^ uint32('a')
	if got != want {
		t.Fatalf("ObjectIDHash(\"a\") = %d, want %d (FNV-1, not FNV-1a)", got, want)
	}
}

func TestObjectIDHashEmptyIsOffsetBasis(t *testing.T) {
	if got := ObjectIDHash(""); got != fnvOffsetBasis32 {
		t.Fatalf("ObjectIDHash(\"\") = %d, want offset basis %d", got, fnvOffsetBasis32)
	}
}

func TestRegistryPreservesInsertionOrder(t *testing.T) {
	r := NewRegistry()
	r.Add(fakeDriver{NewBase(KindSwitch, "b_switch", "B")})
	r.Add(fakeDriver{NewBase(KindSwitch, "a_switch", "A")})

	all := r.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(all))
	}
	if all[0].Base().ObjectID != "b_switch" || all[1].Base().ObjectID != "a_switch" {
		t.Fatalf("registration order not preserved: %+v", all)
	}
}

func TestRegistryLookupByKey(t *testing.T) {
	r := NewRegistry()
	base := NewBase(KindLight, "kitchen_light", "Kitchen Light")
	r.Add(fakeDriver{base})

	got := r.Lookup(base.Key())
	if got == nil {
		t.Fatalf("expected lookup to find entity by key")
	}
	if got.Base().ObjectID != "kitchen_light" {
		t.Fatalf("looked up wrong entity: %+v", got.Base())
	}
	if r.Lookup(base.Key() + 1) != nil {
		t.Fatalf("expected lookup for unknown key to return nil")
	}
}

func TestRegistryByKindSortedOrdersByObjectID(t *testing.T) {
	r := NewRegistry()
	r.Add(fakeDriver{NewBase(KindSensor, "z_sensor", "Z")})
	r.Add(fakeDriver{NewBase(KindSensor, "a_sensor", "A")})
	r.Add(fakeDriver{NewBase(KindSwitch, "m_switch", "M")})

	sensors := r.ByKindSorted(KindSensor)
	if len(sensors) != 2 {
		t.Fatalf("expected 2 sensors, got %d", len(sensors))
	}
	if sensors[0].Base().ObjectID != "a_sensor" || sensors[1].Base().ObjectID != "z_sensor" {
		t.Fatalf("expected sorted order, got %+v", sensors)
	}
}
