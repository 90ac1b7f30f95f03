package selection

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPinClickHighlightsListCard(t *testing.T) {
	s := New()
	s.SetView(ViewSplit)

	s.PinClick("slot-42")

	id, ok := s.Active()
	require.True(t, ok)
	assert.Equal(t, "slot-42", id)
	assert.True(t, s.IsActive("slot-42"), "list card highlight reads the pin's id")
	assert.False(t, s.IsActive("slot-7"))
}

func TestWritersAndClearing(t *testing.T) {
	s := New()

	s.CardEnter("a")
	assert.True(t, s.IsActive("a"))
	s.CardLeave()
	_, ok := s.Active()
	assert.False(t, ok)

	s.CardClick("b")
	assert.True(t, s.IsActive("b"))
	s.Focus("c")
	assert.True(t, s.IsActive("c"))
	s.PopupClose()
	_, ok = s.Active()
	assert.False(t, ok)

	s.Select("d", OriginPinClick)
	s.Select("", OriginPinClick)
	_, ok = s.Active()
	assert.False(t, ok)
}

func TestSubscribe(t *testing.T) {
	s := New()
	s.SetView(ViewMap)

	var order []string
	var changes []Change
	unsubscribeFirst := s.Subscribe(func(c Change) {
		order = append(order, "first")
		changes = append(changes, c)
	})
	s.Subscribe(func(c Change) { order = append(order, "second") })

	s.PinClick("x")
	s.PinClick("x")
	s.PopupClose()

	assert.Equal(t, []string{"first", "second", "first", "second"}, order, "repeated writes of the same id are not delivered")
	require.Len(t, changes, 2)
	assert.Equal(t, Change{
		ID: "x", Active: true, Origin: OriginPinClick, View: ViewMap,
		Effects: Effects{HighlightCard: true, PanMap: true, OpenPopup: true, CenterCarousel: true},
	}, changes[0])
	assert.Equal(t, Change{Origin: OriginPopupClose, View: ViewMap}, changes[1])

	unsubscribeFirst()
	unsubscribeFirst()
	assert.Equal(t, 1, s.Subscribers())

	s.CardEnter("y")
	assert.Len(t, changes, 2)
	assert.Equal(t, "second", order[len(order)-1])
}

func TestSubscriberCanReadState(t *testing.T) {
	s := New()
	var seen string
	s.Subscribe(func(c Change) {
		seen, _ = s.Active()
	})

	s.CardClick("z")
	assert.Equal(t, "z", seen)
}

func TestEffectsFor(t *testing.T) {
	tests := []struct {
		view View
		want Effects
	}{
		{ViewList, Effects{HighlightCard: true}},
		{ViewSplit, Effects{HighlightCard: true, ScrollListCard: true, PanMap: true, OpenPopup: true}},
		{ViewMap, Effects{HighlightCard: true, PanMap: true, OpenPopup: true, CenterCarousel: true}},
	}
	for _, tt := range tests {
		t.Run(string(tt.view), func(t *testing.T) {
			assert.Equal(t, tt.want, EffectsFor(tt.view, "id"))
			assert.Equal(t, Effects{}, EffectsFor(tt.view, ""))
		})
	}
}

func TestParse(t *testing.T) {
	v, ok := ParseView("split")
	assert.True(t, ok)
	assert.Equal(t, ViewSplit, v)
	_, ok = ParseView("grid")
	assert.False(t, ok)

	o, ok := ParseOrigin("card-enter")
	assert.True(t, ok)
	assert.Equal(t, OriginCardEnter, o)
	_, ok = ParseOrigin("keyboard")
	assert.False(t, ok)
}

func TestConcurrentWriters(t *testing.T) {
	s := New()
	var mu sync.Mutex
	delivered := 0
	s.Subscribe(func(Change) {
		mu.Lock()
		delivered++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				s.PinClick("p")
			} else {
				s.CardLeave()
			}
			_, _ = s.Active()
		}(i)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Positive(t, delivered)
	assert.LessOrEqual(t, delivered, 50)
}
