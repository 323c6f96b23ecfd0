package ecs

import "reflect"

// typeOf 返回类型参数 T 对应的 reflect.Type
// 对于接口以外的类型，(*T)(nil) 的 Elem 即为 T 本身
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// GetComponent 泛型版本的组件获取，避免调用方手动做类型断言
//
// 用法：
//
//	pos, ok := ecs.GetComponent[*components.TransformComponent](em, id)
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, found := em.GetComponent(id, typeOf[T]())
	if !found {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// AddComponent 泛型版本的组件添加
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	if compMap, exists := em.components[id]; exists {
		compMap[typeOf[T]()] = component
	}
}

// RemoveComponent 泛型版本的组件移除
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	em.RemoveComponent(id, typeOf[T]())
}

// HasComponent 泛型版本的组件存在性检查
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, typeOf[T]())
}

// GetEntitiesWith1 查询拥有组件 T1 的所有实体（按ID升序）
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1]())
}

// GetEntitiesWith2 查询同时拥有组件 T1、T2 的所有实体（按ID升序）
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2]())
}

// GetEntitiesWith3 查询同时拥有组件 T1、T2、T3 的所有实体（按ID升序）
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2](), typeOf[T3]())
}

// GetEntitiesWith4 查询同时拥有四种组件的所有实体（按ID升序）
func GetEntitiesWith4[T1, T2, T3, T4 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4]())
}

// InsertResource 泛型版本的资源插入，以类型参数 T 作为键
func InsertResource[T any](em *EntityManager, resource T) {
	em.resources[typeOf[T]()] = resource
}

// GetResource 泛型版本的资源获取
//
// 用法：
//
//	materials, ok := ecs.GetResource[*components.BlockMaterials](em)
func GetResource[T any](em *EntityManager) (T, bool) {
	var zero T
	res, found := em.GetResource(typeOf[T]())
	if !found {
		return zero, false
	}
	typed, ok := res.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// RemoveResource 泛型版本的资源移除
func RemoveResource[T any](em *EntityManager) {
	em.RemoveResource(typeOf[T]())
}

// GetSingle 查询唯一拥有组件 T 的实体
// 当匹配数量为 0 或大于 1 时返回 false（无法确定唯一目标）
func GetSingle[T any](em *EntityManager) (EntityID, T, bool) {
	var zero T
	ids := GetEntitiesWith1[T](em)
	if len(ids) != 1 {
		return 0, zero, false
	}
	comp, ok := GetComponent[T](em, ids[0])
	if !ok {
		return 0, zero, false
	}
	return ids[0], comp, true
}
