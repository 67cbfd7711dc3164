package comps

//*******************************************
// component io
//*******************************************

type IStoreable interface {
	_Store(path string)
}

func Store(comp IStoreable, path string) {
	comp._Store(path)
}

type ILoadable[T any] interface {
	_New() T
	_Load(path string)
}

func Load[T ILoadable[T]](path string) T {
	var c T
	comp := c._New()
	comp._Load(path)
	return comp
}

type IRemoveable interface {
	_Remove(path string)
}

func Remove[T IRemoveable](path string) {
	var comp T
	comp._Remove(path)
}
