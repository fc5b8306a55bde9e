package entity

import (
	"classic-snake/game/types"
)

// Snake is the player's body. Body[0] is the head, the last element is the tail.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
}

func NewSnake(startPos types.Point, dir types.Direction) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: dir,
	}
}

// Move prepends newHead to the body
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

// NextHead is the cell the head would enter on the next step
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Add(s.Direction.ToPoint())
}

// Occupies reports whether any segment sits on p
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Clone returns a deep copy that shares no memory with s
func (s *Snake) Clone() *Snake {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return &Snake{Body: body, Direction: s.Direction}
}
