package notify

import "testing"

func TestExportStartedMessage(t *testing.T) {
	n := ExportStarted("PDF")
	if n.Kind != KindInfo {
		t.Errorf("expected info kind, got %s", n.Kind)
	}
	if n.Message != "Your PDF is being generated..." {
		t.Errorf("unexpected message %q", n.Message)
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	if _, ok := r.Last(); ok {
		t.Fatal("empty recorder must have no last event")
	}

	r.Notify(Error(MessageNoSelection))
	r.Notify(ExportStarted("JSON"))

	events := r.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Kind != KindError || events[0].Message != MessageNoSelection {
		t.Errorf("unexpected first event %+v", events[0])
	}

	last, _ := r.Last()
	if last.Kind != KindInfo {
		t.Errorf("expected info as last event, got %s", last.Kind)
	}

	r.Reset()
	if len(r.Events()) != 0 {
		t.Error("Reset must drop events")
	}
}

func TestFuncAdapter(t *testing.T) {
	var got Notification
	var n Notifier = Func(func(x Notification) { got = x })
	n.Notify(Error("boom"))
	if got.Message != "boom" {
		t.Errorf("expected boom, got %q", got.Message)
	}
	Discard.Notify(Error("ignored"))
}
