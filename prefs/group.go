// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// Group is a collection of preference values, each identified by a key.
type Group struct {
	entries map[string]pref
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup() *Group {
	return &Group{
		entries: make(map[string]pref),
	}
}

// keys returns the list of keys in the group sorted alphabetically
func (grp *Group) keys() []string {
	keys := make([]string, 0, len(grp.entries))
	for k := range grp.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (grp *Group) String() string {
	s := strings.Builder{}
	for _, k := range grp.keys() {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, grp.entries[k]))
	}
	return strings.TrimSuffix(s.String(), "\n")
}

// Add preference value to group. The key must not already be in use.
func (grp *Group) Add(key string, p pref) error {
	if strings.Contains(key, keyValueSeparator) || strings.Contains(key, pairSeparator) {
		return fmt.Errorf("prefs: illegal character in key (%s)", key)
	}
	if _, ok := grp.entries[key]; ok {
		return fmt.Errorf("prefs: key already in use (%s)", key)
	}
	grp.entries[key] = p
	return nil
}

// Load applies any values for the group's keys found in the most recent
// command line group. Keys that are not in the group are left on the command
// line stack.
func (grp *Group) Load() error {
	for _, k := range grp.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := grp.entries[k].Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}
	return nil
}

// Reset every preference in the group to the zero value for its type.
func (grp *Group) Reset() error {
	for _, k := range grp.keys() {
		if err := grp.entries[k].Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}
