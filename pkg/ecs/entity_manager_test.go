package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testTranslation struct {
	X, Y, Z float64
}

type testTag struct{}

type testMaterialRef struct {
	Handle uint64
}

type testSettings struct {
	Size float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// ID从1开始，0保留为无效ID
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}

	if em.EntityCount() != 2 {
		t.Errorf("EntityCount() = %d, want 2", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testTranslation{X: 1, Y: 2, Z: 3})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testTranslation{}))
	if !found {
		t.Fatal("Component should be found")
	}

	got := comp.(*testTranslation)
	if got.X != 1 || got.Y != 2 || got.Z != 3 {
		t.Errorf("Component data mismatch, got (%f, %f, %f)", got.X, got.Y, got.Z)
	}
}

func TestAddComponentToMissingEntity(t *testing.T) {
	em := NewEntityManager()

	// 未创建的实体不应该接收组件
	em.AddComponent(EntityID(42), &testTag{})
	if em.HasComponent(EntityID(42), reflect.TypeOf(&testTag{})) {
		t.Error("Component should not be attached to an entity that was never created")
	}
	if em.IsAlive(EntityID(42)) {
		t.Error("Entity 42 should not be alive")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testTranslation{})

	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.IsAlive(id) {
		t.Error("Entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if em.IsAlive(id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.HasComponent(id, reflect.TypeOf(&testTranslation{})) {
		t.Error("Components should be removed together with the entity")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testTranslation{})
	em.AddComponent(id1, &testTag{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testTranslation{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testTag{})

	entities := em.GetEntitiesWith(
		reflect.TypeOf(&testTranslation{}),
		reflect.TypeOf(&testTag{}),
	)
	if len(entities) != 1 || entities[0] != id1 {
		t.Errorf("Expected [%d], got %v", id1, entities)
	}

	withTranslation := em.GetEntitiesWith(reflect.TypeOf(&testTranslation{}))
	if len(withTranslation) != 2 {
		t.Errorf("Expected 2 entities with translation, got %d", len(withTranslation))
	}
}

// TestGetEntitiesWithSortedOrder 验证查询结果按ID升序，且多次查询结果一致
func TestGetEntitiesWithSortedOrder(t *testing.T) {
	em := NewEntityManager()

	const count = 200
	for i := 0; i < count; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testTag{})
	}

	for round := 0; round < 5; round++ {
		ids := GetEntitiesWith1[*testTag](em)
		if len(ids) != count {
			t.Fatalf("round %d: expected %d entities, got %d", round, count, len(ids))
		}
		for i, id := range ids {
			if id != EntityID(i+1) {
				t.Fatalf("round %d: ids[%d] = %d, want %d", round, i, id, i+1)
			}
		}
	}
}

func TestGenericComponentHelpers(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testMaterialRef{Handle: 7})
	AddComponent(em, id, &testTag{})

	if !HasComponent[*testMaterialRef](em, id) {
		t.Fatal("HasComponent should report the material reference")
	}

	ref, ok := GetComponent[*testMaterialRef](em, id)
	if !ok || ref.Handle != 7 {
		t.Fatalf("GetComponent returned (%v, %v), want handle 7", ref, ok)
	}

	// 通过指针修改组件，再次读取应看到新值
	ref.Handle = 9
	again, _ := GetComponent[*testMaterialRef](em, id)
	if again.Handle != 9 {
		t.Errorf("component mutation not visible, got %d", again.Handle)
	}

	RemoveComponent[*testTag](em, id)
	if HasComponent[*testTag](em, id) {
		t.Error("RemoveComponent should detach the tag")
	}

	if ids := GetEntitiesWith2[*testMaterialRef, *testTag](em); len(ids) != 0 {
		t.Errorf("Expected no entity with both components, got %v", ids)
	}
	if ids := GetEntitiesWith1[*testMaterialRef](em); len(ids) != 1 {
		t.Errorf("Expected one entity with material reference, got %v", ids)
	}
}

func TestResources(t *testing.T) {
	em := NewEntityManager()

	if _, ok := GetResource[*testSettings](em); ok {
		t.Fatal("resource should be absent before insertion")
	}

	InsertResource(em, &testSettings{Size: 1.5})
	res, ok := GetResource[*testSettings](em)
	if !ok || res.Size != 1.5 {
		t.Fatalf("GetResource returned (%v, %v)", res, ok)
	}

	// 再次插入替换旧值
	em.InsertResource(&testSettings{Size: 2})
	res, _ = GetResource[*testSettings](em)
	if res.Size != 2 {
		t.Errorf("resource not replaced, got size %v", res.Size)
	}

	RemoveResource[*testSettings](em)
	if _, ok := GetResource[*testSettings](em); ok {
		t.Error("resource should be removed")
	}
}

func TestGetSingle(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		wantOK bool
	}{
		{name: "no match", count: 0, wantOK: false},
		{name: "exactly one", count: 1, wantOK: true},
		{name: "ambiguous", count: 2, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := NewEntityManager()
			var last EntityID
			for i := 0; i < tt.count; i++ {
				last = em.CreateEntity()
				AddComponent(em, last, &testTranslation{X: float64(i)})
			}

			id, comp, ok := GetSingle[*testTranslation](em)
			if ok != tt.wantOK {
				t.Fatalf("GetSingle ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && (id != last || comp == nil) {
				t.Errorf("GetSingle returned (%d, %v), want entity %d", id, comp, last)
			}
		})
	}
}
