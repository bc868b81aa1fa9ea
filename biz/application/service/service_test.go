package service

import (
	"e-learning-server/biz/infrastructure/repository/cart"
	"e-learning-server/biz/infrastructure/repository/class"
	"e-learning-server/biz/infrastructure/store"
	"e-learning-server/biz/infrastructure/store/storetest"
)

type testStores struct {
	classes *storetest.Collection
	carts   *storetest.Collection
}

func newTestServices() (*ClassService, *CartService, *testStores) {
	st := &testStores{
		classes: storetest.New(),
		carts:   storetest.New(),
	}
	db := &store.Database{Classes: st.classes, Carts: st.carts}
	classMapper := class.NewMongoMapper(db)
	return &ClassService{ClassMapper: classMapper},
		&CartService{CartMapper: cart.NewMongoMapper(db), ClassMapper: classMapper},
		st
}
