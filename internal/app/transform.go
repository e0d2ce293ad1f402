package app

import (
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html/charset"

	"diamond_hotels/internal/domain"
)

// ParseHotels walks the feed document and maps every travelItem, wherever it
// sits in the tree, into a Hotel record. The result is sorted ascending by
// numeric id; duplicate ids keep their document order.
func ParseHotels(xmlData []byte) ([]domain.Hotel, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel

	if err := doc.ReadFromBytes(xmlData); err != nil {
		return nil, fmt.Errorf("parse feed XML: %w", err)
	}

	items := doc.FindElements("//travelItem")
	hotels := make([]domain.Hotel, 0, len(items))
	for _, item := range items {
		h, err := mapTravelItem(item)
		if err != nil {
			return nil, err
		}
		hotels = append(hotels, h)
	}

	sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].ID < hotels[j].ID })
	return hotels, nil
}

func mapTravelItem(item *etree.Element) (domain.Hotel, error) {
	raw := item.SelectAttrValue("id", "")
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("travelItem has no numeric id attribute (got %q)", raw)
	}

	h := domain.Hotel{
		ID:     id,
		Name:   html.UnescapeString(deref(childText(item, "./itemName"))),
		Rating: childText(item, "./ratings/ratingCode"),
	}

	addr := item.FindElement("./addresses/address[@type='PHYSICAL']")
	if addr == nil {
		// tolerated: the record is kept with an empty address
		log.Warn().Int64("id", id).Str("name", h.Name).Msg("travelItem has no physical address")
		return h, nil
	}
	h.Address = domain.Address{
		StreetAddress: childText(addr, "./addressLine"),
		City:          childText(addr, "./cityName"),
		State:         childAttr(addr, "./stateProv", "code"),
		PostalCode:    childText(addr, "./postalCode"),
		Country:       childText(addr, "./countryName"),
	}
	return h, nil
}

/********** tiny helpers **********/

// childText returns the given child's text, or nil when the child is missing
// or empty.
func childText(e *etree.Element, path string) *string {
	child := e.FindElement(path)
	if child == nil {
		return nil
	}
	return ptrStr(strings.TrimSpace(child.Text()))
}

// childAttr returns an attribute of the given child, or nil when the child or
// the attribute is missing.
func childAttr(e *etree.Element, path, attr string) *string {
	child := e.FindElement(path)
	if child == nil {
		return nil
	}
	return ptrStr(strings.TrimSpace(child.SelectAttrValue(attr, "")))
}

func ptrStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
