package Lists

import "testing"

func TestFreeLong(t *testing.T) {
	const n = 100000
	var head *Node[int]
	for i := 0; i < n; i++ {
		head = Prepend(head, i)
	}
	released, expect := 0, n-1
	Free(head, func(v int) {
		if v != expect {
			t.Fatalf("released %d, want %d", v, expect)
		}
		expect--
		released++
	})
	if released != n {
		t.Errorf("released %d cells, want %d", released, n)
	}
	if head.next != nil {
		t.Error("head still owns its successor")
	}
}

func TestFreeEmpty(t *testing.T) {
	Free[int](nil, func(int) {
		t.Error("released a cell of the empty chain")
	})
	Free[int](nil, nil)
}

func TestFreeSingle(t *testing.T) {
	released := 0
	Free(NewNode(7), func(v int) {
		if v != 7 {
			t.Errorf("released %d, want 7", v)
		}
		released++
	})
	if released != 1 {
		t.Errorf("released %d cells, want 1", released)
	}
}

func TestTakeSevers(t *testing.T) {
	head := Prepend(Prepend(nil, 1), 0)
	rest := head.Take()
	if rest == nil || rest.V != 1 {
		t.Fatal("take didn't return the successor")
	}
	if head.Next() != nil {
		t.Error("take left the slot occupied")
	}
	if head.Take() != nil {
		t.Error("take of the tail returned a cell")
	}
	Free(rest, nil)
}
