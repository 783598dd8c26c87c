package ui

import "github.com/peco/sneak/match"

func (c *Caret) Pos() match.Position {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.pos
}

func (c *Caret) SetPos(p match.Position) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.pos = p
}
