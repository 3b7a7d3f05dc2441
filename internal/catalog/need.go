package catalog

import (
	"cmp"
	"fmt"
)

type NeedKind int

const (
	NeedClothing NeedKind = iota
	NeedComplexFood
	NeedService
	NeedBuildingMaterial
)

// Need is something a species requires: clothing, complex food, a building
// material or a service. The zero value is not a valid need; build one
// with ResourceNeed or ServiceNeed. Needs are comparable and usable as map
// keys.
type Need struct {
	kind     NeedKind
	resource Resource
	service  Service
}

func needKindFor(c Category) (NeedKind, bool) {
	switch c {
	case CategoryClothing:
		return NeedClothing, true
	case CategoryComplexFood:
		return NeedComplexFood, true
	case CategoryBuildingMaterial:
		return NeedBuildingMaterial, true
	}
	return 0, false
}

// ResourceNeed wraps a clothing, complex food or building material
// resource as a need.
func ResourceNeed(r Resource) (Need, error) {
	if !r.valid() {
		return Need{}, fmt.Errorf("resource %d: %w", int(r), ErrInvalidCategoryValue)
	}
	kind, ok := needKindFor(r.Category())
	if !ok {
		return Need{}, fmt.Errorf("%s (%s) cannot be a need: %w", r, r.Category(), ErrInvalidCategoryValue)
	}
	return Need{kind: kind, resource: r}, nil
}

func ServiceNeed(s Service) Need {
	return Need{kind: NeedService, service: s}
}

func mustNeed(r Resource) Need {
	n, err := ResourceNeed(r)
	if err != nil {
		panic(err)
	}
	return n
}

func (n Need) Kind() NeedKind { return n.kind }

// Resource returns the wrapped resource for non-service needs.
func (n Need) Resource() (Resource, bool) {
	if n.kind == NeedService {
		return 0, false
	}
	return n.resource, true
}

func (n Need) Service() (Service, bool) {
	if n.kind != NeedService {
		return 0, false
	}
	return n.service, true
}

func (n Need) String() string {
	if s, ok := n.Service(); ok {
		return s.String()
	}
	return n.resource.String()
}

func (n Need) Recipe() Recipe {
	if s, ok := n.Service(); ok {
		return s.Recipe()
	}
	return n.resource.Recipe()
}

// CompareNeeds orders by need kind, then by the wrapped value's catalog
// order.
func CompareNeeds(a, b Need) int {
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	if a.kind == NeedService {
		return cmp.Compare(a.service, b.service)
	}
	return cmp.Compare(a.resource, b.resource)
}
