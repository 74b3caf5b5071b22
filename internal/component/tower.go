// component/tower.go
package component

import "go-td-sim/internal/defs"

type Tower struct {
	DefID defs.TowerKind // вид башни из определений
	Cost  int            // сколько было заплачено при постройке
}
