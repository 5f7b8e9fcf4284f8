package layout

import "sort"

// GroupMember is one half of an entry taking part in a size group.
type GroupMember struct {
	Role  Role
	Entry EntryID
}

// SizeGroupIndex maps a group id to the entries that share one resolved
// size. A member must not appear in two groups under the same role; this is
// not checked.
type SizeGroupIndex struct {
	groups map[int][]GroupMember
}

// NewSizeGroupIndex returns an empty index.
func NewSizeGroupIndex() *SizeGroupIndex {
	return &SizeGroupIndex{groups: make(map[int][]GroupMember)}
}

// Add appends a member to a group. Negative group ids are ignored.
func (s *SizeGroupIndex) Add(group int, role Role, id EntryID) {
	if group < 0 {
		return
	}
	s.groups[group] = append(s.groups[group], GroupMember{Role: role, Entry: id})
}

// Remove drops the member from the group if it is there.
func (s *SizeGroupIndex) Remove(group int, role Role, id EntryID) {
	members, ok := s.groups[group]
	if !ok {
		return
	}
	kept := members[:0]
	for _, m := range members {
		if m.Role == role && m.Entry == id {
			continue
		}
		kept = append(kept, m)
	}
	if len(kept) == 0 {
		delete(s.groups, group)
		return
	}
	s.groups[group] = kept
}

// Members returns a copy of the members of a group in the order they were added.
func (s *SizeGroupIndex) Members(group int) []GroupMember {
	members := s.groups[group]
	out := make([]GroupMember, len(members))
	copy(out, members)
	return out
}

// Groups returns the ids of all non-empty groups in ascending order.
func (s *SizeGroupIndex) Groups() []int {
	ids := make([]int, 0, len(s.groups))
	for id := range s.groups {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Clear removes every group.
func (s *SizeGroupIndex) Clear() {
	s.groups = make(map[int][]GroupMember)
}

// maxSize is the largest width and the largest height across a group.
func maxSize(members []GroupMember, geom []Geometry) Size {
	var size Size
	for _, m := range members {
		g := geom[m.Entry]
		if m.Role == LabelRole {
			size.Width = max(size.Width, g.LabelWidth)
			size.Height = max(size.Height, g.LabelHeight)
		} else {
			size.Width = max(size.Width, g.Width)
			size.Height = max(size.Height, g.Height)
		}
	}
	return size
}

// resize overwrites every member's resolved size with its group's maximum.
func (s *SizeGroupIndex) resize(geom []Geometry) {
	for _, group := range s.Groups() {
		members := s.groups[group]
		size := maxSize(members, geom)
		for _, m := range members {
			g := &geom[m.Entry]
			if m.Role == LabelRole {
				g.LabelWidth, g.LabelHeight = size.Width, size.Height
			} else {
				g.Width, g.Height = size.Width, size.Height
			}
		}
	}
}
