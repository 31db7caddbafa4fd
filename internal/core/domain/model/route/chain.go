package route

import "errors"

const maxLegs = 3

// Chain builds a connected leg list: each leg starts where the previous one ended
// and legs are numbered from 1.
//
//	legs, err := route.NewChain(seller).
//	    To(route.Pickup, originHub).
//	    To(route.LineHaul, destinationHub).
//	    To(route.Delivery, buyer).
//	    Legs()
type Chain struct {
	at   Endpoint
	legs []*Leg
	err  error
}

func NewChain(start Endpoint) *Chain {
	return &Chain{at: start}
}

// To appends a leg from the current position to next. The first error sticks and is
// returned by Legs.
func (c *Chain) To(legType LegType, next Endpoint) *Chain {
	if c.err != nil {
		return c
	}
	if len(c.legs) == maxLegs {
		c.err = errors.New("a route has at most 3 legs")
		return c
	}

	leg, err := newLeg(len(c.legs)+1, legType, c.at, next)
	if err != nil {
		c.err = err
		return c
	}

	c.legs = append(c.legs, leg)
	c.at = next
	return c
}

func (c *Chain) Legs() ([]*Leg, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.legs, nil
}
