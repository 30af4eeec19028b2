package diag

import (
	"testing"

	"ferro/internal/source"
)

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)

	if !bag.Add(Diagnostic{Severity: SevError, Code: SynUnexpectedToken}) {
		t.Error("first Add should succeed")
	}
	if !bag.Add(Diagnostic{Severity: SevWarning, Code: SynExpectSemicolon}) {
		t.Error("second Add should succeed")
	}
	if bag.Add(Diagnostic{Severity: SevError, Code: LexUnknownChar}) {
		t.Error("third Add should be dropped by the limit")
	}

	if bag.Len() != 2 {
		t.Errorf("Len = %d, want 2", bag.Len())
	}
	if !bag.HasErrors() || !bag.HasWarnings() {
		t.Error("bag should report both errors and warnings")
	}
}

func TestBagSortAndDedup(t *testing.T) {
	bag := NewBag(10)
	spanAt := func(start uint32) source.Span {
		return source.Span{File: 0, Start: start, End: start + 1}
	}

	bag.Add(Diagnostic{Severity: SevWarning, Code: SynExpectSemicolon, Primary: spanAt(9)})
	bag.Add(Diagnostic{Severity: SevError, Code: SynUnexpectedToken, Primary: spanAt(3)})
	bag.Add(Diagnostic{Severity: SevError, Code: SynUnexpectedToken, Primary: spanAt(3)})

	bag.Sort()
	bag.Dedup()

	items := bag.Items()
	if len(items) != 2 {
		t.Fatalf("after dedup Len = %d, want 2", len(items))
	}
	if items[0].Primary.Start != 3 || items[1].Primary.Start != 9 {
		t.Errorf("unexpected order: %v", items)
	}
}

func TestBagReporter(t *testing.T) {
	bag := NewBag(5)
	var rep Reporter = &BagReporter{Bag: bag}

	rep.Report(SynExpectIdentifier, SevError, source.Span{}, "expected identifier", nil)

	if bag.Len() != 1 {
		t.Fatalf("Len = %d, want 1", bag.Len())
	}
	if bag.Items()[0].Message != "expected identifier" {
		t.Errorf("message = %q", bag.Items()[0].Message)
	}
}
