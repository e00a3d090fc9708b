// Command optloci renders MTPA/MTPV reference curves for synchronous
// machine drives and evaluates torque at chosen operating points.
package main

func main() {
	execute()
}
