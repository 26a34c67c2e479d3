package Trees

import (
	"bytes"
	"os"
	"os/exec"
	"runtime/debug"
	"testing"
)

// The cascading baseline really does die on a degenerate shape once the
// stack can't grow anymore; goroutine stacks are resizable (1 GiB cap by
// default), so the limit is lowered and the overflow provoked in a child
// process, stack exhaustion being unrecoverable in-process.
func TestFreeRecursiveDegenerate(t *testing.T) {
	const n = 1 << 20
	if os.Getenv("REAP_STACK_CHILD") == "1" {
		debug.SetMaxStack(4 << 20)
		FreeRecursive(caterpillar(n), nil)
		return
	}
	if testing.Short() {
		t.Skip("spawns a crashing child process")
	}
	cmd := exec.Command(os.Args[0], "-test.run=^TestFreeRecursiveDegenerate$")
	cmd.Env = append(os.Environ(), "REAP_STACK_CHILD=1")
	out, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatalf("cascading teardown survived a %d-deep chain under a capped stack:\n%s", n, out)
	}
	if !bytes.Contains(out, []byte("stack overflow")) {
		t.Fatalf("child failed for another reason:\n%s", out)
	}
}

// Same chain, same capped stack: the bounded variants must not need the
// room the baseline needed.
func TestFreeDegenerateCappedStack(t *testing.T) {
	const n = 1 << 20
	if os.Getenv("REAP_STACK_CHILD") == "1" {
		debug.SetMaxStack(4 << 20)
		released := 0
		count := func(int) { released++ }
		Free(caterpillar(n), count)
		FreeWorklist(caterpillar(n), count)
		FreeGuided(hcaterpillar(n), count)
		if released != 3*n {
			os.Exit(1)
		}
		return
	}
	if testing.Short() {
		t.Skip("spawns a child process")
	}
	cmd := exec.Command(os.Args[0], "-test.run=^TestFreeDegenerateCappedStack$")
	cmd.Env = append(os.Environ(), "REAP_STACK_CHILD=1")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("bounded variants died under the capped stack:\n%s", out)
	}
}
