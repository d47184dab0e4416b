// Copyright (C) 2025 aegiscache
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

// SPDX-License-Identifier: LGPL-3.0-or-later

package keyname

import "testing"

func TestItemKeys(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"value", ItemValue("item-1"), "item:item-1:value"},
		{"perms", ItemPerms("item-1"), "item:item-1:perms"},
		{"backprop", ItemBackprop("item-1", "perm:type:%d+"), "item:item-1:backprop:perm:type:%d+"},
		{"backprop prefix", ItemBackpropPrefix("item-1"), "item:item-1:backprop:"},
		{"private", ItemPrivate("item-1", "client-a"), "item:item-1:private:client-a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestClientPerms(t *testing.T) {
	got := ClientPerms("client-a")
	want := "client:client-a:perms"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCollectionKeys(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"legacy items", CollectionItems("ck"), "collection:ck:items"},
		{"variants", CollectionVariants("ck"), "collection:ck:variants"},
		{"filter", CollectionFilter("ck"), "collection:ck:filter"},
		{"variant items", VariantItems("ck", "v1"), "collection:ck:v1:items"},
		{"variant perms", VariantPerms("ck", "v1"), "collection:ck:v1:perms"},
		{"variant count", VariantCount("ck", "v1"), "collection:ck:v1:count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestParseBackpropType(t *testing.T) {
	edgeKey := ItemBackprop("item-1", "perm:type:%d+")

	typeToken, ok := ParseBackpropType(edgeKey)
	if !ok {
		t.Fatal("expected ok=true for a well-formed edge key")
	}
	if typeToken != "perm:type:%d+" {
		t.Errorf("typeToken = %q, want %q", typeToken, "perm:type:%d+")
	}
}

func TestParseBackpropType_Malformed(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"no backprop marker", "item:item-1:perms"},
		{"empty type token", "item:item-1:backprop:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := ParseBackpropType(tt.key); ok {
				t.Errorf("expected ok=false for %q", tt.key)
			}
		})
	}
}

func TestKeysAreStableAcrossCalls(t *testing.T) {
	if ItemValue("x") != ItemValue("x") {
		t.Error("ItemValue should be a pure function of its input")
	}
	if VariantItems("ck", "v1") != VariantItems("ck", "v1") {
		t.Error("VariantItems should be a pure function of its inputs")
	}
}
