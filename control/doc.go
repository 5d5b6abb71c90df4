/*
Package control contains the value models behind the spectrum widgets.

A Track is a bounded numeric range with one or more Handles. Each handle keeps
its value inside its effective bounds: the declared bounds of the handle, or,
for handles declared with a "previous" lower bound or a "next" upper bound, the
current value of the neighbouring handle. Values are quantized to the step of
the handle measured from the minimum of the track.

The GUI does not modify handle values directly. Pointer and keyboard input is
fed to the Track (PointerDown, PointerMove, PointerUp, Focus, StepBy, ...),
which runs the per-handle interaction state machine and emits InputEvents while
an interaction is in progress and one ChangeEvent when it ends with a changed
value. Direct assignment with Handle.SetValue never emits events and works even
when the track is disabled.

Slider, MultiSlider and RangeSlider compose a Track; Stepper, Picker and
Tooltip are the models of the other widgets. All of them are created through a
Container, which assigns each instance its ID and shares the event handler,
the attribute table and the number formatting of the container.
*/
package control
