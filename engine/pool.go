package engine

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/skiggle"
	"github.com/npillmayer/skiggle/candidates"
	"github.com/npillmayer/skiggle/character"
)

// Characters are short-lived objects, created for every character a user
// writes. To avoid re-allocating their stroke and segment storage we pool
// them. Every alphabet gets a pool of its own.
type characterPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

func newCharacterPool(table *candidates.Table, verifier skiggle.Verifier, opts []character.Option) *characterPool {
	cp := &characterPool{ctx: context.Background()}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return character.New(table, verifier, opts...)
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	cp.opool = pool.NewObjectPool(cp.ctx, factory, config)
	return cp
}

func (cp *characterPool) borrow() (*character.Character, error) {
	o, err := cp.opool.BorrowObject(cp.ctx)
	if err != nil {
		return nil, err
	}
	c := o.(*character.Character)
	c.Reset()
	return c, nil
}

// release clears a character and puts it back into the pool.
func (cp *characterPool) release(c *character.Character) error {
	c.Reset()
	return cp.opool.ReturnObject(cp.ctx, c)
}
