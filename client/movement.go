package client

// swapAdjacent swaps two adjacent list nodes a, b where a.next == b and
// prev.next == a (prev nil if a is head).
func (d *Desktop) swapAdjacent(prev, a, b *Client) {
	if prev == nil {
		d.Head = b
	} else {
		prev.next = b
	}
	a.next = b.next
	b.next = a
}

// MoveUp swaps c with its list-previous neighbor. If c is already head,
// it wraps to become tail, so the operation is always a permutation
// rather than a no-op.
func (d *Desktop) MoveUp(c *Client) {
	if c == nil || d.Head == nil {
		return
	}
	prev := d.prevOf(c)
	if prev == nil {
		if c.next == nil {
			return
		}
		d.moveToTail(c)
		return
	}
	pp := d.prevOf(prev)
	d.swapAdjacent(pp, prev, c)
}

// MoveDown swaps c with its list-next neighbor, wrapping c to head if it
// is tail.
func (d *Desktop) MoveDown(c *Client) {
	if c == nil || c.next == nil {
		if c != nil && d.Head != c {
			d.moveToHead(c)
		}
		return
	}
	prev := d.prevOf(c)
	d.swapAdjacent(prev, c, c.next)
}

// moveToTail unlinks c and appends it at the end of the list.
func (d *Desktop) moveToTail(c *Client) {
	prev := d.prevOf(c)
	if prev == nil {
		d.Head = c.next
	} else {
		prev.next = c.next
	}
	c.next = nil
	if d.Head == nil {
		d.Head = c
		return
	}
	tail := d.Head
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = c
}

// moveToHead unlinks c and makes it the new head.
func (d *Desktop) moveToHead(c *Client) {
	prev := d.prevOf(c)
	if prev == nil {
		return
	}
	prev.next = c.next
	c.next = d.Head
	d.Head = c
}

// SwapMaster promotes current to the master slot: if current is already
// head it is demoted one position instead, so the binding toggles the
// top two windows. Returns the client that should become current (always
// d.Head after this call).
func (d *Desktop) SwapMaster(current *Client) *Client {
	if current == nil || d.Head == nil {
		return current
	}
	if d.Head == current {
		if current.next != nil {
			prev := (*Client)(nil)
			d.swapAdjacent(prev, current, current.next)
		}
		return d.Head
	}
	for d.Head != current {
		prev := d.prevOf(current)
		pp := d.prevOf(prev)
		d.swapAdjacent(pp, prev, current)
	}
	return d.Head
}

// CyclicNext returns the next client after c in list order, wrapping to
// head.
func (d *Desktop) CyclicNext(c *Client) *Client {
	if d.Head == nil {
		return nil
	}
	if c == nil || c.next == nil {
		return d.Head
	}
	return c.next
}

// CyclicPrev returns the client before c in list order, wrapping to
// tail.
func (d *Desktop) CyclicPrev(c *Client) *Client {
	if d.Head == nil {
		return nil
	}
	if p := d.prevOf(c); p != nil {
		return p
	}
	tail := d.Head
	for tail.next != nil {
		tail = tail.next
	}
	return tail
}
