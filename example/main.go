package main

import (
	"fmt"

	"github.com/mgnsk/list"
)

func main() {
	l := list.New[int]()

	for _, v := range []int{1, 2, 3} {
		if err := l.PushBack(v); err != nil {
			panic(err)
		}
	}

	l.Erase(l.Begin())

	if _, err := l.Insert(l.Begin(), 9); err != nil {
		panic(err)
	}

	l.PopBack()

	// Move every element to another list without copying.
	other := list.New[int]()
	other.Splice(other.Begin(), l, l.Begin(), l.End())

	for v := range other.All() {
		fmt.Println(v)
	}

	fmt.Println("source empty:", l.Empty())
}
